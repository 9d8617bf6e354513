package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rozgaar-gb-server/models"
)

// ReviewRepository stores reviews. There is no update or delete.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByWorker returns a worker's reviews newest first
func (r *ReviewRepository) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// RatingsByWorker loads the rating values of every listed worker in one query
func (r *ReviewRepository) RatingsByWorker(ctx context.Context, workerIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	ratings := make(map[uuid.UUID][]int, len(workerIDs))
	if len(workerIDs) == 0 {
		return ratings, nil
	}

	var rows []struct {
		WorkerID uuid.UUID
		Rating   int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("worker_id", "rating").
		Where("worker_id IN ?", workerIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		ratings[row.WorkerID] = append(ratings[row.WorkerID], row.Rating)
	}
	return ratings, nil
}
