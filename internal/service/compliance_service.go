package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/export"
)

type complianceRepository interface {
	Create(ctx context.Context, log *models.ComplianceLog) error
	ListByChild(ctx context.Context, childID string) ([]models.ComplianceLog, error)
}

// ComplianceService handles service-delivery tracking.
type ComplianceService struct {
	repo      complianceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewComplianceService constructs the service.
func NewComplianceService(repo complianceRepository, validate *validator.Validate, logger *zap.Logger) *ComplianceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplianceService{repo: repo, validator: validate, logger: logger}
}

// AddComplianceRequest describes a new compliance entry.
type AddComplianceRequest struct {
	ChildID     string `json:"child_id" validate:"required"`
	Date        string `json:"date" validate:"required"`
	ServiceType string `json:"service_type" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=Received Partial Missed"`
	Notes       string `json:"notes"`
}

// List returns compliance entries for a profile, newest first.
func (s *ComplianceService) List(ctx context.Context, childID string) ([]models.ComplianceLog, error) {
	logs, err := s.repo.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list compliance logs")
	}
	return logs, nil
}

// Add validates and appends a compliance entry. The service date must not
// lie in the future.
func (s *ComplianceService) Add(ctx context.Context, req AddComplianceRequest) (*models.ComplianceLog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid compliance payload")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date")
	}
	if date.After(endOfToday()) {
		return nil, appErrors.Wrap(nil, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "service date cannot be in the future")
	}

	log := &models.ComplianceLog{
		ChildID:     req.ChildID,
		Date:        date,
		ServiceType: req.ServiceType,
		Status:      models.ComplianceStatus(req.Status),
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save compliance log")
	}
	return log, nil
}

// ExportCSV renders a profile's compliance history for download.
func (s *ComplianceService) ExportCSV(ctx context.Context, childID string) ([]byte, error) {
	logs, err := s.List(ctx, childID)
	if err != nil {
		return nil, err
	}
	table := export.Table{
		Headers: []string{"Date", "Service", "Status", "Notes"},
		Rows:    make([][]string, 0, len(logs)),
	}
	for _, log := range logs {
		table.Rows = append(table.Rows, []string{
			log.Date.Format("2006-01-02"),
			log.ServiceType,
			string(log.Status),
			log.Notes,
		})
	}
	data, err := export.CSV(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export compliance logs")
	}
	return data, nil
}

func endOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
}
