package services

import (
	"github.com/google/uuid"

	"rozgaar-gb-server/models"
)

// Identity is a read-only snapshot of the signed-in account
type Identity struct {
	UserID   uuid.UUID      `json:"user_id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata"`
	IsAdmin  bool           `json:"is_admin"`
}

// AdminGate decides whether an identity may manage site content
type AdminGate struct {
	adminEmail string
}

// NewAdminGate uses the configured admin address; an empty address means
// only the metadata flag grants admin
func NewAdminGate(adminEmail string) *AdminGate {
	return &AdminGate{adminEmail: models.NormalizeEmail(adminEmail)}
}

// IsAdmin is true for a non-nil identity whose email matches the admin
// address case-insensitively, or whose metadata carries isAdmin: true
func (g *AdminGate) IsAdmin(identity *Identity) bool {
	if identity == nil {
		return false
	}
	if g.adminEmail != "" && models.NormalizeEmail(identity.Email) == g.adminEmail {
		return true
	}
	flag, ok := identity.Metadata[models.MetadataAdminFlag].(bool)
	return ok && flag
}

// IdentityFor snapshots user and resolves its admin flag
func (g *AdminGate) IdentityFor(user *models.User) *Identity {
	metadata := map[string]any{}
	for k, v := range user.Metadata {
		metadata[k] = v
	}
	identity := &Identity{
		UserID:   user.ID,
		Email:    user.Email,
		Metadata: metadata,
	}
	identity.IsAdmin = g.IsAdmin(identity)
	return identity
}
