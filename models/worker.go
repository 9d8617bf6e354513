package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Profile represents a worker's marketplace listing. Its ID is the ID of the
// owning user, so each account has at most one profile.
type Profile struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	FullName        string         `json:"full_name" gorm:"size:255;not null"`
	Category        Category       `json:"category" gorm:"type:varchar(32);not null;index"`
	Location        Location       `json:"location" gorm:"type:varchar(32);not null;index"`
	AreasServed     pq.StringArray `json:"areas_served" gorm:"type:text[]"`
	Phone           string         `json:"phone" gorm:"size:32;not null"`
	WhatsApp        *string        `json:"whatsapp" gorm:"column:whatsapp;size:32"`
	HourlyRate      *int           `json:"hourly_rate"`
	DailyRate       *int           `json:"daily_rate"`
	Description     *string        `json:"description" gorm:"type:text"`
	ProfilePhotoURL *string        `json:"profile_photo_url" gorm:"size:500"`
	IsAvailable     bool           `json:"is_available" gorm:"not null;index"`
	CreatedAt       time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// ServesLocation reports whether the worker is based in or serves loc.
func (p *Profile) ServesLocation(loc Location) bool {
	if p.Location == loc {
		return true
	}
	for _, area := range p.AreasServed {
		if Location(area) == loc {
			return true
		}
	}
	return false
}

// ContactNumber is the number used for WhatsApp links: the WhatsApp number
// when set, otherwise the phone number.
func (p *Profile) ContactNumber() string {
	if p.WhatsApp != nil && *p.WhatsApp != "" {
		return *p.WhatsApp
	}
	return p.Phone
}

// ProfileRequest is the body of a create-or-update of the caller's own profile
type ProfileRequest struct {
	FullName        string   `json:"full_name" binding:"max=255"`
	Phone           string   `json:"phone" binding:"max=32"`
	WhatsApp        string   `json:"whatsapp" binding:"max=32"`
	Category        string   `json:"category"`
	Location        string   `json:"location"`
	AreasServed     []string `json:"areas_served"`
	HourlyRate      *int     `json:"hourly_rate"`
	DailyRate       *int     `json:"daily_rate"`
	Description     string   `json:"description"`
	ProfilePhotoURL string   `json:"profile_photo_url" binding:"omitempty,url"`
	IsAvailable     *bool    `json:"is_available"`
}

// WorkerResponse is a profile together with its review aggregate
type WorkerResponse struct {
	Profile
	Rating       RatingSummary `json:"rating"`
	WhatsAppLink string        `json:"whatsapp_link"`
}

// WorkerFilter narrows a worker search. Nil fields and an empty Search
// impose no constraint.
type WorkerFilter struct {
	Category *Category
	Location *Location
	Search   string
}

// Normalized returns the filter with Search trimmed and lowercased
func (f WorkerFilter) Normalized() WorkerFilter {
	f.Search = strings.ToLower(strings.TrimSpace(f.Search))
	return f
}

// CacheKey identifies the result set of the normalized filter
func (f WorkerFilter) CacheKey() string {
	n := f.Normalized()
	var category, location string
	if n.Category != nil {
		category = string(*n.Category)
	}
	if n.Location != nil {
		location = string(*n.Location)
	}
	return fmt.Sprintf("%s%s|%s|%s", WorkerSearchKeyPrefix, category, location, n.Search)
}

// WorkerSearchKeyPrefix prefixes every cached search result key
const WorkerSearchKeyPrefix = "workers:search:"

// BeforeCreate is a GORM hook that runs before creating a profile
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
