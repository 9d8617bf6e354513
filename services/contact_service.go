package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"rozgaar-gb-server/models"
	"rozgaar-gb-server/monitoring"
)

const defaultFeedbackRating = 5

// ContactStore is the persistence used by ContactService
type ContactStore interface {
	CreateQuery(ctx context.Context, query *models.Query) error
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
}

// ContactService accepts contact-form queries and site feedback
type ContactService struct {
	store    ContactStore
	validate *validator.Validate
	log      *zap.Logger
}

func NewContactService(store ContactStore, log *zap.Logger) *ContactService {
	return &ContactService{store: store, validate: validator.New(), log: log}
}

func (s *ContactService) checkNameEmail(verr *ValidationError, name, email string) {
	if strings.TrimSpace(name) == "" {
		verr.Add("name", "nameRequired")
	}
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		verr.Add("email", "fieldRequired")
	case len(email) > maxEmailLength || s.validate.Var(email, "email") != nil:
		verr.Add("email", "invalidEmail")
	}
}

func (s *ContactService) SubmitQuery(ctx context.Context, req models.QueryCreate) (*models.Query, error) {
	verr := &ValidationError{}
	s.checkNameEmail(verr, req.Name, req.Email)
	if strings.TrimSpace(req.Subject) == "" {
		verr.Add("subject", "fieldRequired")
	}
	if strings.TrimSpace(req.Message) == "" {
		verr.Add("message", "fieldRequired")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	query := &models.Query{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   optional(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.store.CreateQuery(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to store query: %w", err)
	}
	monitoring.RecordContactSubmission("query")
	return query, nil
}

// SubmitFeedback stores site feedback; a missing rating counts as 5
func (s *ContactService) SubmitFeedback(ctx context.Context, req models.FeedbackCreate) (*models.Feedback, error) {
	verr := &ValidationError{}
	s.checkNameEmail(verr, req.Name, req.Email)
	if strings.TrimSpace(req.Feedback) == "" {
		verr.Add("feedback", "fieldRequired")
	}
	rating := req.Rating
	if rating == 0 {
		rating = defaultFeedbackRating
	}
	if rating < 1 || rating > 5 {
		verr.Add("rating", "ratingRequired")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Rating:   rating,
		Feedback: strings.TrimSpace(req.Feedback),
	}
	if err := s.store.CreateFeedback(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	monitoring.RecordContactSubmission("feedback")
	return feedback, nil
}
