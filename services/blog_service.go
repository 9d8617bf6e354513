package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rozgaar-gb-server/models"
)

const excerptLength = 150

// BlogStore is the persistence used by BlogService
type BlogStore interface {
	List(ctx context.Context) ([]models.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) error
	Save(ctx context.Context, blog *models.Blog) error
}

type BlogService struct {
	blogs BlogStore
	log   *zap.Logger
}

func NewBlogService(blogs BlogStore, log *zap.Logger) *BlogService {
	return &BlogService{blogs: blogs, log: log}
}

// Excerpt cuts content to 150 characters, marking the cut with "..."
func Excerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

// List returns summaries of every blog, newest first
func (s *BlogService) List(ctx context.Context) ([]models.BlogSummary, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	summaries := make([]models.BlogSummary, len(blogs))
	for i, b := range blogs {
		summaries[i] = models.BlogSummary{
			ID:        b.ID,
			Title:     b.Title,
			Excerpt:   Excerpt(b.Content),
			ImageURL:  b.ImageURL,
			Author:    b.Author,
			CreatedAt: b.CreatedAt,
		}
	}
	return summaries, nil
}

func (s *BlogService) Get(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blog %s: %w", id, err)
	}
	return blog, nil
}

func validateBlog(req models.BlogRequest) error {
	verr := &ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		verr.Add("title", "fieldRequired")
	}
	if strings.TrimSpace(req.Content) == "" {
		verr.Add("content", "fieldRequired")
	}
	return verr.Err()
}

func applyBlogRequest(blog *models.Blog, req models.BlogRequest) {
	blog.Title = strings.TrimSpace(req.Title)
	blog.Content = strings.TrimSpace(req.Content)
	blog.ImageURL = optional(req.ImageURL)
	blog.Author = strings.TrimSpace(req.Author)
	if blog.Author == "" {
		blog.Author = models.DefaultBlogAuthor
	}
}

// Create stores a new blog. Callers must have passed the admin gate.
func (s *BlogService) Create(ctx context.Context, req models.BlogRequest) (*models.Blog, error) {
	if err := validateBlog(req); err != nil {
		return nil, err
	}

	blog := &models.Blog{}
	applyBlogRequest(blog, req)
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	s.log.Info("blog created", zap.String("blog_id", blog.ID.String()))
	return blog, nil
}

// Update replaces the editable fields of a blog. Callers must have passed the admin gate.
func (s *BlogService) Update(ctx context.Context, id uuid.UUID, req models.BlogRequest) (*models.Blog, error) {
	if err := validateBlog(req); err != nil {
		return nil, err
	}

	blog, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyBlogRequest(blog, req)
	if err := s.blogs.Save(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to update blog %s: %w", id, err)
	}
	s.log.Info("blog updated", zap.String("blog_id", blog.ID.String()))
	return blog, nil
}
