package database

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rozgaar-gb-server/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ApplyWorkerFilter narrows a profiles query to available workers matching f,
// newest first. Each constraint is added only when its filter field is set.
func ApplyWorkerFilter(tx *gorm.DB, f models.WorkerFilter) *gorm.DB {
	tx = tx.Where("is_available = ?", true)

	if f.Category != nil {
		tx = tx.Where("category = ?", string(*f.Category))
	}
	if f.Location != nil {
		loc := string(*f.Location)
		tx = tx.Where("location = ? OR ? = ANY(areas_served)", loc, loc)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		tx = tx.Where("full_name ILIKE ?", "%"+likeEscaper.Replace(search)+"%")
	}

	return tx.Order("created_at DESC")
}

// ProfileRepository reads and writes worker profiles
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Search returns the available profiles matching f
func (r *ProfileRepository) Search(ctx context.Context, f models.WorkerFilter) ([]models.Profile, error) {
	profiles := []models.Profile{}
	err := ApplyWorkerFilter(r.db.WithContext(ctx).Model(&models.Profile{}), f).Find(&profiles).Error
	return profiles, err
}

// FindByID returns gorm.ErrRecordNotFound when no profile has the id
func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts the profile or overwrites every column but created_at
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

// SetPhoto stores the profile photo URL of an existing profile
func (r *ProfileRepository) SetPhoto(ctx context.Context, id uuid.UUID, url string) error {
	result := r.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Update("profile_photo_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
