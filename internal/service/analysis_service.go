package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type analysisRepository interface {
	Create(ctx context.Context, analysis *models.IepAnalysis) error
	GetLatestByChild(ctx context.Context, childID string) (*models.IepAnalysis, error)
}

type documentRepository interface {
	Create(ctx context.Context, doc *models.IepDocument) error
	ListByChild(ctx context.Context, childID string) ([]models.IepDocument, error)
}

type analyzerGateway interface {
	AnalyzeIEP(ctx context.Context, text string) (*models.IepAnalysis, error)
}

// AnalysisService runs the analyze pipeline and serves its results.
type AnalysisService struct {
	analyses  analysisRepository
	documents documentRepository
	gateway   analyzerGateway
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnalysisService constructs the service.
func NewAnalysisService(analyses analysisRepository, documents documentRepository, gateway analyzerGateway, validate *validator.Validate, logger *zap.Logger) *AnalysisService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{analyses: analyses, documents: documents, gateway: gateway, validator: validate, logger: logger}
}

// AnalyzeRequest carries the document text to run through the model.
type AnalyzeRequest struct {
	Text     string `json:"text" validate:"required"`
	ChildID  string `json:"child_id" validate:"required"`
	Filename string `json:"filename"`
}

// Analyze runs the AI analysis and persists the analysis followed by the
// source document. A malformed model response writes no rows.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*models.IepAnalysis, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "text content is required for analysis")
	}

	analysis, err := s.gateway.AnalyzeIEP(ctx, req.Text)
	if err != nil {
		return nil, err
	}
	analysis.ChildID = req.ChildID

	if err := s.analyses.Create(ctx, analysis); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save analysis")
	}

	filename := req.Filename
	if filename == "" {
		filename = "Manual Paste"
	}
	doc := &models.IepDocument{
		ChildID:    req.ChildID,
		Filename:   filename,
		Content:    req.Text,
		AnalysisID: &analysis.ID,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save document")
	}

	s.logger.Info("analysis stored",
		zap.String("child_id", req.ChildID),
		zap.String("analysis_id", analysis.ID),
		zap.Int("red_flags", len(analysis.RedFlags)))

	return analysis, nil
}

// Latest returns the most recent analysis for a profile, nil when none.
func (s *AnalysisService) Latest(ctx context.Context, childID string) (*models.IepAnalysis, error) {
	analysis, err := s.analyses.GetLatestByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch analysis")
	}
	return analysis, nil
}

// Documents lists document metadata for a profile.
func (s *AnalysisService) Documents(ctx context.Context, childID string) ([]models.IepDocument, error) {
	docs, err := s.documents.ListByChild(ctx, childID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documents")
	}
	return docs, nil
}
