package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type profileRepository interface {
	GetLatest(ctx context.Context) (*models.ChildProfile, error)
	GetByID(ctx context.Context, id string) (*models.ChildProfile, error)
	Create(ctx context.Context, profile *models.ChildProfile) error
	Update(ctx context.Context, profile *models.ChildProfile) error
}

// ProfileService handles the child profile record.
type ProfileService struct {
	repo      profileRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs the service.
func NewProfileService(repo profileRepository, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{repo: repo, validator: validate, logger: logger}
}

// SaveProfileRequest creates a profile, or updates one when ID is set.
type SaveProfileRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" validate:"required"`
	Age           int      `json:"age" validate:"gte=0,lte=25"`
	Grade         string   `json:"grade"`
	Disabilities  []string `json:"disabilities"`
	FocusTags     []string `json:"focus_tags"`
	AdvocacyLevel string   `json:"advocacy_level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	PrimaryGoal   string   `json:"primary_goal"`
	StateContext  string   `json:"state_context"`
	LastIepDate   string   `json:"last_iep_date"`
}

// Get returns the most recent profile, nil when onboarding has not run.
func (s *ProfileService) Get(ctx context.Context) (*models.ChildProfile, error) {
	profile, err := s.repo.GetLatest(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch profile")
	}
	return profile, nil
}

// Save creates or updates the profile. The returned bool reports whether a
// new row was created.
func (s *ProfileService) Save(ctx context.Context, req SaveProfileRequest) (*models.ChildProfile, bool, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "student name is required")
	}

	lastIep := time.Now().UTC()
	if req.LastIepDate != "" {
		parsed, err := parseDate(req.LastIepDate)
		if err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid last IEP date")
		}
		lastIep = parsed
	}

	profile := &models.ChildProfile{
		ID:            req.ID,
		Name:          req.Name,
		Age:           req.Age,
		Grade:         req.Grade,
		Disabilities:  pq.StringArray(req.Disabilities),
		FocusTags:     pq.StringArray(req.FocusTags),
		AdvocacyLevel: req.AdvocacyLevel,
		PrimaryGoal:   req.PrimaryGoal,
		StateContext:  req.StateContext,
		LastIepDate:   lastIep,
	}

	if req.ID == "" {
		if err := s.repo.Create(ctx, profile); err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create profile")
		}
		return profile, true, nil
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch profile")
	}
	if existing == nil {
		return nil, false, appErrors.ErrNotFound
	}
	profile.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.ErrNotFound
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	return profile, false, nil
}
