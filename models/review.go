package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a rating left against a worker by a visitor. Reviews are
// append-only: there is no update or delete path.
type Review struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID      uuid.UUID `json:"worker_id" gorm:"type:uuid;not null;index"`
	Worker        *Profile  `json:"-" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	ReviewerName  string    `json:"reviewer_name" gorm:"size:255;not null"`
	ReviewerPhone *string   `json:"reviewer_phone" gorm:"size:32"`
	Rating        int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment       *string   `json:"comment" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// BeforeCreate is a GORM hook that runs before creating a review
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ReviewCreate is the request body for submitting a review
type ReviewCreate struct {
	ReviewerName  string `json:"reviewer_name"`
	ReviewerPhone string `json:"reviewer_phone"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// RatingSummary is the aggregate of a worker's reviews. Average is nil and
// Display is empty when there are no reviews.
type RatingSummary struct {
	WorkerID     uuid.UUID `json:"worker_id"`
	Count        int       `json:"count"`
	Average      *float64  `json:"average"`
	Display      string    `json:"display,omitempty"`
	Distribution [5]int    `json:"distribution"`
}

// HasReviews reports whether the summary covers at least one review
func (s RatingSummary) HasReviews() bool {
	return s.Count > 0
}
