package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rozgaar-gb-server/models"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// List returns every blog newest first
func (r *BlogRepository) List(ctx context.Context) ([]models.Blog, error) {
	blogs := []models.Blog{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (r *BlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *BlogRepository) Save(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Save(blog).Error
}
