package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type commRepository interface {
	Create(ctx context.Context, entry *models.CommLogEntry) error
	ListByChild(ctx context.Context, childID string) ([]models.CommLogEntry, error)
}

// CommService handles the school communication log.
type CommService struct {
	repo      commRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCommService constructs the service. Contact methods contain spaces so
// oneof cannot express them; a custom rule covers the closed set.
func NewCommService(repo commRepository, validate *validator.Validate, logger *zap.Logger) *CommService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &CommService{repo: repo, validator: validate, logger: logger}
	_ = svc.validator.RegisterValidation("contact_method", func(fl validator.FieldLevel) bool {
		switch models.ContactMethod(fl.Field().String()) {
		case models.MethodEmail, models.MethodPhone, models.MethodInPerson, models.MethodMeeting:
			return true
		default:
			return false
		}
	})
	return svc
}

// AddCommRequest describes a new communication entry.
type AddCommRequest struct {
	ChildID        string `json:"child_id" validate:"required"`
	Date           string `json:"date" validate:"required"`
	ContactName    string `json:"contact_name" validate:"required"`
	Method         string `json:"method" validate:"required,contact_method"`
	Summary        string `json:"summary"`
	FollowUpNeeded bool   `json:"follow_up_needed"`
}

// List returns communication entries for a profile, newest first.
func (s *CommService) List(ctx context.Context, childID string) ([]models.CommLogEntry, error) {
	entries, err := s.repo.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list communication logs")
	}
	return entries, nil
}

// Add validates and appends a communication entry.
func (s *CommService) Add(ctx context.Context, req AddCommRequest) (*models.CommLogEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid communication payload")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date")
	}

	entry := &models.CommLogEntry{
		ChildID:        req.ChildID,
		Date:           date,
		ContactName:    req.ContactName,
		Method:         models.ContactMethod(req.Method),
		Summary:        req.Summary,
		FollowUpNeeded: req.FollowUpNeeded,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save communication log")
	}
	return entry, nil
}
