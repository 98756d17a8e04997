package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type behaviorRepository interface {
	Create(ctx context.Context, log *models.BehaviorLog) error
	ListByChild(ctx context.Context, childID string) ([]models.BehaviorLog, error)
}

// BehaviorService handles antecedent/behavior/consequence observations.
type BehaviorService struct {
	repo      behaviorRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBehaviorService constructs the service.
func NewBehaviorService(repo behaviorRepository, validate *validator.Validate, logger *zap.Logger) *BehaviorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BehaviorService{repo: repo, validator: validate, logger: logger}
}

// AddBehaviorRequest describes a new behavior observation.
type AddBehaviorRequest struct {
	ChildID         string `json:"child_id" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time"`
	Antecedent      string `json:"antecedent" validate:"required"`
	Behavior        string `json:"behavior" validate:"required"`
	Consequence     string `json:"consequence"`
	Intensity       int    `json:"intensity" validate:"required,min=1,max=5"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Notes           string `json:"notes"`
}

// List returns behavior entries for a profile, newest first.
func (s *BehaviorService) List(ctx context.Context, childID string) ([]models.BehaviorLog, error) {
	logs, err := s.repo.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list behavior logs")
	}
	return logs, nil
}

// Add validates and appends a behavior observation.
func (s *BehaviorService) Add(ctx context.Context, req AddBehaviorRequest) (*models.BehaviorLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid behavior payload")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date")
	}

	log := &models.BehaviorLog{
		ChildID:         req.ChildID,
		Date:            date,
		Time:            req.Time,
		Antecedent:      req.Antecedent,
		Behavior:        req.Behavior,
		Consequence:     req.Consequence,
		Intensity:       req.Intensity,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save behavior log")
	}
	return log, nil
}
