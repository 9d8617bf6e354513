package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rozgaar-gb-server/models"
)

// Aggregate summarizes a worker's ratings. With no ratings the average stays
// nil and Display empty, so callers can tell "no reviews" from a zero score.
func Aggregate(workerID uuid.UUID, ratings []int) models.RatingSummary {
	summary := models.RatingSummary{WorkerID: workerID, Count: len(ratings)}
	if len(ratings) == 0 {
		return summary
	}

	sum := 0
	for _, r := range ratings {
		sum += r
		if r >= 1 && r <= 5 {
			summary.Distribution[r-1]++
		}
	}

	mean := float64(sum) / float64(len(ratings))
	summary.Average = &mean
	summary.Display = decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(ratings)))).
		StringFixed(1)
	return summary
}

func ratingsOf(reviews []models.Review) []int {
	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	return ratings
}
