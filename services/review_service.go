package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rozgaar-gb-server/models"
	"rozgaar-gb-server/monitoring"
	"rozgaar-gb-server/utils"
)

// ReviewStore is the persistence used by ReviewService
type ReviewStore interface {
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
}

// WorkerLookup resolves whether a worker exists
type WorkerLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// ReviewPublisher notifies subscribers that a worker's reviews changed
type ReviewPublisher interface {
	PublishReviewsChanged(workerID uuid.UUID, summary models.RatingSummary)
}

// WorkerReviews is a worker's review list with its aggregate
type WorkerReviews struct {
	Reviews []models.Review      `json:"reviews"`
	Summary models.RatingSummary `json:"summary"`
}

type ReviewService struct {
	reviews   ReviewStore
	workers   WorkerLookup
	cache     Cache
	publisher ReviewPublisher
	log       *zap.Logger
}

func NewReviewService(reviews ReviewStore, workers WorkerLookup, cache Cache, publisher ReviewPublisher, log *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, workers: workers, cache: cache, publisher: publisher, log: log}
}

// List returns a worker's reviews newest first. The summary is recomputed
// from the list on every uncached read.
func (s *ReviewService) List(ctx context.Context, workerID uuid.UUID) (*WorkerReviews, error) {
	return cached(ctx, s.cache, s.log, reviewsKey(workerID), func() (*WorkerReviews, error) {
		reviews, err := s.reviews.ListByWorker(ctx, workerID)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews: %w", err)
		}
		return &WorkerReviews{
			Reviews: reviews,
			Summary: Aggregate(workerID, ratingsOf(reviews)),
		}, nil
	})
}

// Column sizes of the reviews table
const (
	maxReviewerNameLen  = 255
	maxReviewerPhoneLen = 32
)

// ValidateReview checks a submission without touching the store
func ValidateReview(req models.ReviewCreate) error {
	verr := &ValidationError{}
	name := strings.TrimSpace(req.ReviewerName)
	switch {
	case name == "":
		verr.Add("reviewer_name", "nameRequired")
	case utf8.RuneCountInString(name) > maxReviewerNameLen:
		verr.Add("reviewer_name", "fieldTooLong")
	}
	if phone := strings.TrimSpace(req.ReviewerPhone); phone != "" {
		if len(phone) > maxReviewerPhoneLen || !utils.ValidatePhoneNumber(phone) {
			verr.Add("reviewer_phone", "invalidPhone")
		}
	}
	if req.Rating < 1 || req.Rating > 5 {
		verr.Add("rating", "ratingRequired")
	}
	return verr.Err()
}

// Create validates and stores a review, then invalidates cached results for
// the worker and notifies live subscribers
func (s *ReviewService) Create(ctx context.Context, workerID uuid.UUID, req models.ReviewCreate) (*models.Review, error) {
	if err := ValidateReview(req); err != nil {
		return nil, err
	}

	if _, err := s.workers.FindByID(ctx, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load worker %s: %w", workerID, err)
	}

	review := &models.Review{
		WorkerID:      workerID,
		ReviewerName:  strings.TrimSpace(req.ReviewerName),
		ReviewerPhone: optional(req.ReviewerPhone),
		Rating:        req.Rating,
		Comment:       optional(req.Comment),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	monitoring.RecordReviewCreated()

	invalidateWorker(ctx, s.cache, s.log, workerID)

	if s.publisher != nil {
		if reviews, err := s.List(ctx, workerID); err == nil {
			s.publisher.PublishReviewsChanged(workerID, reviews.Summary)
		} else {
			s.log.Warn("could not refresh rating for subscribers", zap.String("worker_id", workerID.String()), zap.Error(err))
		}
	}

	return review, nil
}
