package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rozgaar-gb-server/config"
)

const (
	maxImageSize       = 5 * 1024 * 1024
	profilePhotoFolder = "profile-photos"
	blogImageFolder    = "blog-images"
)

// Uploader stores an image and returns its public URL
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
}

// CloudinaryUploader implements Uploader on Cloudinary
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	overwrite := true
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		Overwrite:    &overwrite,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// ValidateImageFile accepts jpg, jpeg, png and webp files up to 5 MB
func ValidateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > maxImageSize {
		return false
	}
	switch strings.ToLower(filepath.Ext(h.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// MediaService uploads user images into per-account folders
type MediaService struct {
	uploader Uploader
	now      func() time.Time
	log      *zap.Logger
}

// NewMediaService accepts a nil uploader; uploads then fail with ErrUploadUnavailable
func NewMediaService(uploader Uploader, log *zap.Logger) *MediaService {
	return &MediaService{uploader: uploader, now: time.Now, log: log}
}

// UploadProfilePhoto stores a photo under profile-photos/<user id>
func (s *MediaService) UploadProfilePhoto(ctx context.Context, userID uuid.UUID, h *multipart.FileHeader) (string, error) {
	return s.upload(ctx, profilePhotoFolder+"/"+userID.String(), h)
}

// UploadBlogImage stores an admin's blog illustration
func (s *MediaService) UploadBlogImage(ctx context.Context, userID uuid.UUID, h *multipart.FileHeader) (string, error) {
	return s.upload(ctx, blogImageFolder+"/"+userID.String(), h)
}

func (s *MediaService) upload(ctx context.Context, folder string, h *multipart.FileHeader) (string, error) {
	if !ValidateImageFile(h) {
		verr := &ValidationError{}
		verr.Add("photo", "invalidImage")
		return "", verr
	}
	if s.uploader == nil {
		return "", ErrUploadUnavailable
	}

	file, err := h.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	publicID := strconv.FormatInt(s.now().UnixMilli(), 10)
	url, err := s.uploader.UploadImage(ctx, file, folder, publicID)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	s.log.Info("image uploaded", zap.String("folder", folder), zap.String("url", url))
	return url, nil
}
