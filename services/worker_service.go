package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rozgaar-gb-server/models"
	"rozgaar-gb-server/monitoring"
	"rozgaar-gb-server/utils"
)

// ProfileStore is the persistence used by WorkerService
type ProfileStore interface {
	Search(ctx context.Context, f models.WorkerFilter) ([]models.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
	SetPhoto(ctx context.Context, id uuid.UUID, url string) error
}

// RatingSource loads the rating values of several workers at once
type RatingSource interface {
	RatingsByWorker(ctx context.Context, workerIDs []uuid.UUID) (map[uuid.UUID][]int, error)
}

// WorkerService answers worker searches and manages a worker's own profile
type WorkerService struct {
	profiles ProfileStore
	ratings  RatingSource
	cache    Cache
	log      *zap.Logger
}

func NewWorkerService(profiles ProfileStore, ratings RatingSource, cache Cache, log *zap.Logger) *WorkerService {
	return &WorkerService{profiles: profiles, ratings: ratings, cache: cache, log: log}
}

// ParseFilter builds a filter from raw query parameters. Empty values and
// "all" leave a dimension unconstrained; unknown values are rejected.
func ParseFilter(category, location, search string) (models.WorkerFilter, error) {
	var f models.WorkerFilter
	verr := &ValidationError{}

	if raw := strings.TrimSpace(category); raw != "" && raw != "all" {
		if c, ok := models.ParseCategory(raw); ok {
			f.Category = &c
		} else {
			verr.Add("category", "invalidCategory")
		}
	}
	if raw := strings.TrimSpace(location); raw != "" && raw != "all" {
		if l, ok := models.ParseLocation(raw); ok {
			f.Location = &l
		} else {
			verr.Add("location", "invalidLocation")
		}
	}
	f.Search = strings.TrimSpace(search)

	if err := verr.Err(); err != nil {
		return models.WorkerFilter{}, err
	}
	return f, nil
}

// Search returns available workers matching f, newest first, each with its
// rating summary
func (s *WorkerService) Search(ctx context.Context, f models.WorkerFilter) ([]models.WorkerResponse, error) {
	f = f.Normalized()
	return cached(ctx, s.cache, s.log, f.CacheKey(), func() ([]models.WorkerResponse, error) {
		profiles, err := s.profiles.Search(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("failed to search workers: %w", err)
		}
		return s.withRatings(ctx, profiles)
	})
}

// Get returns one worker regardless of availability
func (s *WorkerService) Get(ctx context.Context, id uuid.UUID) (*models.WorkerResponse, error) {
	resp, err := cached(ctx, s.cache, s.log, workerKey(id), func() (*models.WorkerResponse, error) {
		profile, err := s.profiles.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load worker %s: %w", id, err)
		}
		responses, err := s.withRatings(ctx, []models.Profile{*profile})
		if err != nil {
			return nil, err
		}
		return &responses[0], nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *WorkerService) withRatings(ctx context.Context, profiles []models.Profile) ([]models.WorkerResponse, error) {
	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	ratings, err := s.ratings.RatingsByWorker(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	responses := make([]models.WorkerResponse, len(profiles))
	for i, p := range profiles {
		responses[i] = models.WorkerResponse{
			Profile:      p,
			Rating:       Aggregate(p.ID, ratings[p.ID]),
			WhatsAppLink: utils.WhatsAppLink(p.ContactNumber()),
		}
	}
	return responses, nil
}

// GetOwn returns the caller's profile, or ErrNotFound before it is created
func (s *WorkerService) GetOwn(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return profile, nil
}

// UpsertOwn validates req and creates or replaces the caller's profile
func (s *WorkerService) UpsertOwn(ctx context.Context, userID uuid.UUID, req models.ProfileRequest) (*models.Profile, error) {
	profile, err := buildProfile(userID, req)
	if err != nil {
		return nil, err
	}

	// the upsert leaves created_at alone on update
	existing, err := s.profiles.FindByID(ctx, userID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	s.log.Info("profile saved", zap.String("user_id", userID.String()))
	monitoring.RecordProfileSaved()
	invalidateWorker(ctx, s.cache, s.log, userID)

	return profile, nil
}

// SetPhoto records an uploaded photo URL on the caller's existing profile
func (s *WorkerService) SetPhoto(ctx context.Context, userID uuid.UUID, url string) error {
	if err := s.profiles.SetPhoto(ctx, userID, url); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to store profile photo: %w", err)
	}
	invalidateWorker(ctx, s.cache, s.log, userID)
	return nil
}

func buildProfile(userID uuid.UUID, req models.ProfileRequest) (*models.Profile, error) {
	verr := &ValidationError{}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		verr.Add("full_name", "nameRequired")
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		verr.Add("phone", "fieldRequired")
	} else if !utils.ValidatePhoneNumber(phone) {
		verr.Add("phone", "invalidPhone")
	}
	whatsapp := optional(req.WhatsApp)
	if whatsapp != nil && !utils.ValidatePhoneNumber(*whatsapp) {
		verr.Add("whatsapp", "invalidPhone")
	}

	category, ok := models.ParseCategory(strings.TrimSpace(req.Category))
	if !ok {
		verr.Add("category", "invalidCategory")
	}
	location, ok := models.ParseLocation(strings.TrimSpace(req.Location))
	if !ok {
		verr.Add("location", "invalidLocation")
	}

	areas := pq.StringArray{}
	seen := make(map[models.Location]bool, len(req.AreasServed))
	for _, raw := range req.AreasServed {
		area, ok := models.ParseLocation(strings.TrimSpace(raw))
		if !ok {
			verr.Add("areas_served", "invalidLocation")
			continue
		}
		if !seen[area] {
			seen[area] = true
			areas = append(areas, string(area))
		}
	}

	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		verr.Add("hourly_rate", "invalidRate")
	}
	if req.DailyRate != nil && *req.DailyRate < 0 {
		verr.Add("daily_rate", "invalidRate")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	return &models.Profile{
		ID:              userID,
		FullName:        fullName,
		Category:        category,
		Location:        location,
		AreasServed:     areas,
		Phone:           phone,
		WhatsApp:        whatsapp,
		HourlyRate:      req.HourlyRate,
		DailyRate:       req.DailyRate,
		Description:     optional(req.Description),
		ProfilePhotoURL: optional(req.ProfilePhotoURL),
		IsAvailable:     available,
	}, nil
}
