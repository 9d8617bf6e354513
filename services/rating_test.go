package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	workerID := uuid.New()

	tests := []struct {
		name         string
		ratings      []int
		average      float64
		display      string
		distribution [5]int
	}{
		{"whole average keeps one decimal", []int{5, 4, 3}, 4.0, "4.0", [5]int{0, 0, 1, 1, 1}},
		{"half rounds up", []int{5, 4}, 4.5, "4.5", [5]int{0, 0, 0, 1, 1}},
		{"thirds round down", []int{5, 4, 4}, 13.0 / 3.0, "4.3", [5]int{0, 0, 0, 2, 1}},
		{"two thirds round up", []int{4, 5, 5}, 14.0 / 3.0, "4.7", [5]int{0, 0, 0, 1, 2}},
		{"single review", []int{1}, 1.0, "1.0", [5]int{1, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(workerID, tt.ratings)
			require.NotNil(t, summary.Average)
			assert.InDelta(t, tt.average, *summary.Average, 1e-9)
			assert.Equal(t, tt.display, summary.Display)
			assert.Equal(t, len(tt.ratings), summary.Count)
			assert.Equal(t, tt.distribution, summary.Distribution)
			assert.Equal(t, workerID, summary.WorkerID)
			assert.True(t, summary.HasReviews())
		})
	}
}

func TestAggregateWithoutReviewsIsUndefined(t *testing.T) {
	summary := Aggregate(uuid.New(), nil)

	assert.Nil(t, summary.Average)
	assert.Empty(t, summary.Display)
	assert.Zero(t, summary.Count)
	assert.False(t, summary.HasReviews())
}
