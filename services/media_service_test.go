package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	args := m.Called(ctx, file, folder, publicID)
	return args.String(0), args.Error(1)
}

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["photo"][0]
}

func TestValidateImageFile(t *testing.T) {
	assert.True(t, ValidateImageFile(newFileHeader(t, "me.JPG", []byte("img"))))
	assert.True(t, ValidateImageFile(newFileHeader(t, "me.webp", []byte("img"))))
	assert.False(t, ValidateImageFile(newFileHeader(t, "me.gif", []byte("img"))))
	assert.False(t, ValidateImageFile(newFileHeader(t, "empty.png", nil)))
	assert.False(t, ValidateImageFile(&multipart.FileHeader{Filename: "big.png", Size: maxImageSize + 1}))
	assert.False(t, ValidateImageFile(nil))
}

func TestUploadProfilePhoto(t *testing.T) {
	userID := uuid.New()
	uploader := &mockUploader{}
	uploader.On("UploadImage", mock.Anything, mock.Anything, "profile-photos/"+userID.String(), "1700000000000").
		Return("https://res.cloudinary.com/demo/p.png", nil).Once()

	svc := NewMediaService(uploader, zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := svc.UploadProfilePhoto(context.Background(), userID, newFileHeader(t, "me.png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/p.png", url)
	uploader.AssertExpectations(t)
}

func TestUploadRejectsBadFilesAndMissingBackend(t *testing.T) {
	uploader := &mockUploader{}
	svc := NewMediaService(uploader, zap.NewNop())

	_, err := svc.UploadProfilePhoto(context.Background(), uuid.New(), newFileHeader(t, "doc.pdf", []byte("pdf")))
	verr, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "invalidImage", verr.Fields["photo"])
	uploader.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	unconfigured := NewMediaService(nil, zap.NewNop())
	_, err = unconfigured.UploadBlogImage(context.Background(), uuid.New(), newFileHeader(t, "me.png", []byte("png")))
	assert.ErrorIs(t, err, ErrUploadUnavailable)
}
