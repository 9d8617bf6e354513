package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MetadataAdminFlag is the metadata key that marks an account as admin
const MetadataAdminFlag = "isAdmin"

type User struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string            `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string            `json:"-" gorm:"size:255;not null"` // Hidden from JSON
	Metadata     datatypes.JSONMap `json:"metadata" gorm:"type:jsonb"`
	IsActive     bool              `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate is a GORM hook that runs before creating a user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// HasAdminFlag reports whether the account metadata marks it as admin
func (u *User) HasAdminFlag() bool {
	if u == nil || u.Metadata == nil {
		return false
	}
	flag, ok := u.Metadata[MetadataAdminFlag].(bool)
	return ok && flag
}

// NormalizeEmail lowercases and trims an address for storage and comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
