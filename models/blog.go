package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultBlogAuthor = "Admin"

// Blog is an admin-authored article
type Blog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"size:500;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ImageURL  *string   `json:"image_url" gorm:"size:500"`
	Author    string    `json:"author" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Blog model
func (Blog) TableName() string {
	return "blogs"
}

// BeforeCreate is a GORM hook that runs before creating a blog
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Author == "" {
		b.Author = DefaultBlogAuthor
	}
	return nil
}

// BlogRequest is the body of a blog create or update
type BlogRequest struct {
	Title    string `json:"title" binding:"max=500"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
	Author   string `json:"author" binding:"max=255"`
}

// BlogSummary is a list entry with a truncated excerpt
type BlogSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	ImageURL  *string   `json:"image_url"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
