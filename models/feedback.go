package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is a site-wide rating and comment from the feedback form
type Feedback struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Rating    int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Feedback  string    `json:"feedback" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets custom table name
func (Feedback) TableName() string { return "feedbacks" }

// BeforeCreate is a GORM hook that runs before creating feedback
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Query is a contact-form submission
type Query struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     *string   `json:"phone" gorm:"size:32"`
	Subject   string    `json:"subject" gorm:"size:500;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets custom table name
func (Query) TableName() string { return "queries" }

// BeforeCreate is a GORM hook that runs before creating a query
func (q *Query) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// QueryCreate is the contact form body
type QueryCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FeedbackCreate is the feedback form body. A zero Rating defaults to 5.
type FeedbackCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}
