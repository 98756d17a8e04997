package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/export"
)

type letterRepository interface {
	Create(ctx context.Context, draft *models.LetterDraft) error
	Update(ctx context.Context, draft *models.LetterDraft) error
	GetByID(ctx context.Context, id string) (*models.LetterDraft, error)
	ListByChild(ctx context.Context, childID string) ([]models.LetterDraft, error)
}

// LetterService handles letter drafts and their PDF export.
type LetterService struct {
	repo      letterRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLetterService constructs the service.
func NewLetterService(repo letterRepository, validate *validator.Validate, logger *zap.Logger) *LetterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LetterService{repo: repo, validator: validate, logger: logger}
}

// SaveLetterRequest creates a draft, or re-saves an edited one when ID is set.
type SaveLetterRequest struct {
	ID      string `json:"id"`
	ChildID string `json:"child_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Type    string `json:"type"`
}

// List returns drafts most recently edited first.
func (s *LetterService) List(ctx context.Context, childID string) ([]models.LetterDraft, error) {
	drafts, err := s.repo.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list letter drafts")
	}
	return drafts, nil
}

// Save creates or updates a draft. Drafts are the only child records with
// update-in-place semantics.
func (s *LetterService) Save(ctx context.Context, req SaveLetterRequest) (*models.LetterDraft, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid letter payload")
	}

	draft := &models.LetterDraft{
		ID:      req.ID,
		ChildID: req.ChildID,
		Title:   req.Title,
		Content: req.Content,
		Type:    req.Type,
	}

	if req.ID == "" {
		if err := s.repo.Create(ctx, draft); err != nil {
			return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save letter draft")
		}
		return draft, true, nil
	}

	if err := s.repo.Update(ctx, draft); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.ErrNotFound
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update letter draft")
	}
	return draft, false, nil
}

// RenderPDF produces a printable copy of a draft.
func (s *LetterService) RenderPDF(ctx context.Context, id string) ([]byte, string, error) {
	draft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch letter draft")
	}
	if draft == nil {
		return nil, "", appErrors.ErrNotFound
	}

	pdf, err := export.LetterPDF(export.Letter{
		Title:      draft.Title,
		Type:       draft.Type,
		Content:    draft.Content,
		LastEdited: draft.LastEdited,
	})
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render letter pdf")
	}

	filename := draft.Title
	if filename == "" {
		filename = "letter"
	}
	return pdf, filename + ".pdf", nil
}
