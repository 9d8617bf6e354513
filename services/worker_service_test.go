package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rozgaar-gb-server/models"
)

func newProfile(name string, category models.Category, location models.Location, age time.Duration) *models.Profile {
	return &models.Profile{
		ID:          uuid.New(),
		FullName:    name,
		Category:    category,
		Location:    location,
		AreasServed: pq.StringArray{},
		Phone:       "0312 0000000",
		IsAvailable: true,
		CreatedAt:   time.Now().Add(-age),
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		location  string
		search    string
		wantErr   map[string]string
		wantCat   *models.Category
		wantLoc   *models.Location
		wantQuery string
	}{
		{name: "empty", wantQuery: ""},
		{name: "all means unconstrained", category: "all", location: "all"},
		{name: "valid values", category: "plumber", location: "hunza", search: "  karim ", wantQuery: "karim"},
		{name: "unknown category", category: "pilot", wantErr: map[string]string{"category": "invalidCategory"}},
		{name: "unknown both", category: "pilot", location: "lahore", wantErr: map[string]string{
			"category": "invalidCategory",
			"location": "invalidLocation",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.category, tt.location, tt.search)
			if tt.wantErr != nil {
				verr, ok := IsValidation(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantErr, verr.Fields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, f.Search)
			if tt.category == "plumber" {
				require.NotNil(t, f.Category)
				assert.Equal(t, models.CategoryPlumber, *f.Category)
				require.NotNil(t, f.Location)
				assert.Equal(t, models.LocationHunza, *f.Location)
			} else {
				assert.Nil(t, f.Category)
				assert.Nil(t, f.Location)
			}
		})
	}
}

func TestWorkerSearchMatchesServedAreasNewestFirst(t *testing.T) {
	older := newProfile("Ali Khan", models.CategoryElectrician, models.LocationGilgit, 2*time.Hour)
	newer := newProfile("Sajid Ali", models.CategoryElectrician, models.LocationSkardu, time.Hour)
	newer.AreasServed = pq.StringArray{"gilgit"}
	plumber := newProfile("Ali Plumber", models.CategoryPlumber, models.LocationGilgit, 0)
	away := newProfile("Ali Away", models.CategoryElectrician, models.LocationGilgit, 0)
	away.IsAvailable = false

	profiles := newFakeProfileStore(older, newer, plumber, away)
	reviews := &fakeReviewStore{reviews: []models.Review{
		{WorkerID: older.ID, Rating: 5},
		{WorkerID: older.ID, Rating: 4},
		{WorkerID: older.ID, Rating: 3},
	}}
	svc := NewWorkerService(profiles, reviews, NoopCache{}, zap.NewNop())

	cat := models.CategoryElectrician
	loc := models.LocationGilgit
	results, err := svc.Search(context.Background(), models.WorkerFilter{Category: &cat, Location: &loc, Search: "ali"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, newer.ID, results[0].ID)
	assert.Equal(t, older.ID, results[1].ID)
	assert.False(t, results[0].Rating.HasReviews())
	assert.Nil(t, results[0].Rating.Average)
	assert.Equal(t, "4.0", results[1].Rating.Display)
	assert.Equal(t, "https://wa.me/03120000000", results[1].WhatsAppLink)
}

func TestWorkerSearchIsCachedUntilInvalidated(t *testing.T) {
	profile := newProfile("Karim", models.CategoryMason, models.LocationNagar, 0)
	profiles := newFakeProfileStore(profile)
	cache := newMemoryCache()
	svc := NewWorkerService(profiles, &fakeReviewStore{}, cache, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Search(ctx, models.WorkerFilter{Search: "Karim"})
	require.NoError(t, err)
	results, err := svc.Search(ctx, models.WorkerFilter{Search: " karim "})
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 1, profiles.searchCalls)
	assert.True(t, cache.has(models.WorkerSearchKeyPrefix+"||karim"))

	_, err = svc.UpsertOwn(ctx, profile.ID, models.ProfileRequest{
		FullName: "Karim", Phone: "0312 0000000", Category: "mason", Location: "nagar",
	})
	require.NoError(t, err)
	assert.False(t, cache.has(models.WorkerSearchKeyPrefix+"||karim"))

	_, err = svc.Search(ctx, models.WorkerFilter{Search: "karim"})
	require.NoError(t, err)
	assert.Equal(t, 2, profiles.searchCalls)
}

func TestWorkerSearchSurfacesStoreErrors(t *testing.T) {
	profiles := newFakeProfileStore()
	profiles.err = errors.New("connection refused")
	svc := NewWorkerService(profiles, &fakeReviewStore{}, NoopCache{}, zap.NewNop())

	_, err := svc.Search(context.Background(), models.WorkerFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, profiles.err)
}

func TestWorkerGet(t *testing.T) {
	profile := newProfile("Nadia", models.CategoryCook, models.LocationHunza, 0)
	profile.IsAvailable = false
	svc := NewWorkerService(newFakeProfileStore(profile), &fakeReviewStore{}, newMemoryCache(), zap.NewNop())

	got, err := svc.Get(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nadia", got.FullName)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertOwnValidatesBeforeWriting(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewWorkerService(profiles, &fakeReviewStore{}, NoopCache{}, zap.NewNop())
	negative := -100

	_, err := svc.UpsertOwn(context.Background(), uuid.New(), models.ProfileRequest{
		FullName:    "   ",
		Phone:       "abc",
		Category:    "pilot",
		Location:    "lahore",
		AreasServed: []string{"hunza", "karachi"},
		HourlyRate:  &negative,
	})

	verr, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"full_name":    "nameRequired",
		"phone":        "invalidPhone",
		"category":     "invalidCategory",
		"location":     "invalidLocation",
		"areas_served": "invalidLocation",
		"hourly_rate":  "invalidRate",
	}, verr.Fields)
	assert.Zero(t, profiles.upserts)
}

func TestUpsertOwnNormalizesFields(t *testing.T) {
	profiles := newFakeProfileStore()
	svc := NewWorkerService(profiles, &fakeReviewStore{}, NoopCache{}, zap.NewNop())
	userID := uuid.New()
	rate := 1500

	profile, err := svc.UpsertOwn(context.Background(), userID, models.ProfileRequest{
		FullName:    "  Hassan  ",
		Phone:       "0355 1234567",
		WhatsApp:    "  ",
		Category:    "driver",
		Location:    "skardu",
		AreasServed: []string{"shigar", "shigar", " kharmang "},
		DailyRate:   &rate,
		Description: "",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "Hassan", profile.FullName)
	assert.Nil(t, profile.WhatsApp)
	assert.Nil(t, profile.Description)
	assert.Nil(t, profile.HourlyRate)
	assert.Equal(t, &rate, profile.DailyRate)
	assert.Equal(t, pq.StringArray{"shigar", "kharmang"}, profile.AreasServed)
	assert.True(t, profile.IsAvailable)
	assert.Equal(t, 1, profiles.upserts)

	unavailable := false
	profile, err = svc.UpsertOwn(context.Background(), userID, models.ProfileRequest{
		FullName: "Hassan", Phone: "0355 1234567", Category: "driver", Location: "skardu", IsAvailable: &unavailable,
	})
	require.NoError(t, err)
	assert.False(t, profile.IsAvailable)
}

func TestUpsertOwnKeepsCreatedAt(t *testing.T) {
	profile := newProfile("Rehmat", models.CategoryCarpenter, models.LocationGilgit, 0)
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	profile.CreatedAt = created
	profiles := newFakeProfileStore(profile)
	svc := NewWorkerService(profiles, &fakeReviewStore{}, NoopCache{}, zap.NewNop())

	saved, err := svc.UpsertOwn(context.Background(), profile.ID, models.ProfileRequest{
		FullName: "Rehmat Ali", Phone: "0311 7654321", Category: "carpenter", Location: "gilgit",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rehmat Ali", saved.FullName)
	assert.True(t, created.Equal(saved.CreatedAt))
	assert.True(t, created.Equal(profiles.profiles[profile.ID].CreatedAt))

	profiles.err = errors.New("connection refused")
	_, err = svc.UpsertOwn(context.Background(), profile.ID, models.ProfileRequest{
		FullName: "Rehmat Ali", Phone: "0311 7654321", Category: "carpenter", Location: "gilgit",
	})
	assert.ErrorIs(t, err, profiles.err)
	assert.Equal(t, 1, profiles.upserts)
}

func TestGetOwnAndSetPhoto(t *testing.T) {
	profile := newProfile("Zara", models.CategoryMaid, models.LocationGhizer, 0)
	svc := NewWorkerService(newFakeProfileStore(profile), &fakeReviewStore{}, NoopCache{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.GetOwn(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.SetPhoto(ctx, uuid.New(), "https://img"), ErrNotFound)

	require.NoError(t, svc.SetPhoto(ctx, profile.ID, "https://img/zara.png"))
	own, err := svc.GetOwn(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, own.ProfilePhotoURL)
	assert.Equal(t, "https://img/zara.png", *own.ProfilePhotoURL)
}
