package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type progressRepository interface {
	Create(ctx context.Context, entry *models.GoalProgress) error
	ListByChild(ctx context.Context, childID string) ([]models.GoalProgress, error)
}

// ProgressService handles goal-progress tracking.
type ProgressService struct {
	repo      progressRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProgressService constructs the service.
func NewProgressService(repo progressRepository, validate *validator.Validate, logger *zap.Logger) *ProgressService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{repo: repo, validator: validate, logger: logger}
}

// AddProgressRequest describes a new progress measurement.
type AddProgressRequest struct {
	ChildID      string `json:"child_id" validate:"required"`
	GoalName     string `json:"goal_name" validate:"required"`
	CurrentValue string `json:"current_value"`
	TargetValue  string `json:"target_value"`
	Status       string `json:"status" validate:"required,oneof=Emerging Progressing Mastered Regression"`
}

// List returns progress entries for a profile, newest first.
func (s *ProgressService) List(ctx context.Context, childID string) ([]models.GoalProgress, error) {
	entries, err := s.repo.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list goal progress")
	}
	return entries, nil
}

// Add validates and appends a progress measurement.
func (s *ProgressService) Add(ctx context.Context, req AddProgressRequest) (*models.GoalProgress, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid progress payload")
	}

	entry := &models.GoalProgress{
		ChildID:      req.ChildID,
		GoalName:     req.GoalName,
		CurrentValue: req.CurrentValue,
		TargetValue:  req.TargetValue,
		Status:       models.ProgressStatus(req.Status),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save goal progress")
	}
	return entry, nil
}
