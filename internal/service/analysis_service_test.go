package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type fakeAnalysisRepo struct {
	created *models.IepAnalysis
	latest  *models.IepAnalysis
}

func (f *fakeAnalysisRepo) Create(_ context.Context, analysis *models.IepAnalysis) error {
	analysis.ID = "a-1"
	f.created = analysis
	return nil
}

func (f *fakeAnalysisRepo) GetLatestByChild(context.Context, string) (*models.IepAnalysis, error) {
	return f.latest, nil
}

type fakeDocumentRepo struct {
	created *models.IepDocument
	docs    []models.IepDocument
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *models.IepDocument) error {
	f.created = doc
	return nil
}

func (f *fakeDocumentRepo) ListByChild(context.Context, string) ([]models.IepDocument, error) {
	return f.docs, nil
}

type fakeAnalyzer struct {
	analysis *models.IepAnalysis
	err      error
}

func (f *fakeAnalyzer) AnalyzeIEP(context.Context, string) (*models.IepAnalysis, error) {
	return f.analysis, f.err
}

func TestAnalysisServiceAnalyzePersistsBoth(t *testing.T) {
	analyses := &fakeAnalysisRepo{}
	documents := &fakeDocumentRepo{}
	gateway := &fakeAnalyzer{analysis: &models.IepAnalysis{Summary: "Summary", RedFlags: models.StringList{"No baseline"}}}
	svc := NewAnalysisService(analyses, documents, gateway, nil, nil)

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{Text: "IEP body", ChildID: "p-1"})
	require.NoError(t, err)
	assert.Equal(t, "p-1", analysis.ChildID)

	require.NotNil(t, analyses.created)
	require.NotNil(t, documents.created)
	assert.Equal(t, "Manual Paste", documents.created.Filename)
	assert.Equal(t, "IEP body", documents.created.Content)
	require.NotNil(t, documents.created.AnalysisID)
	assert.Equal(t, "a-1", *documents.created.AnalysisID)
}

func TestAnalysisServiceAnalyzeKeepsFilename(t *testing.T) {
	documents := &fakeDocumentRepo{}
	gateway := &fakeAnalyzer{analysis: &models.IepAnalysis{Summary: "Summary"}}
	svc := NewAnalysisService(&fakeAnalysisRepo{}, documents, gateway, nil, nil)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Text: "body", ChildID: "p-1", Filename: "iep-2026.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "iep-2026.pdf", documents.created.Filename)
}

func TestAnalysisServiceAnalyzeRequiresText(t *testing.T) {
	svc := NewAnalysisService(&fakeAnalysisRepo{}, &fakeDocumentRepo{}, &fakeAnalyzer{}, nil, nil)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Text: "   ", ChildID: "p-1"})
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestAnalysisServiceAnalyzeGatewayFailureWritesNothing(t *testing.T) {
	analyses := &fakeAnalysisRepo{}
	documents := &fakeDocumentRepo{}
	gateway := &fakeAnalyzer{err: appErrors.ErrMalformedAIResponse}
	svc := NewAnalysisService(analyses, documents, gateway, nil, nil)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Text: "body", ChildID: "p-1"})
	assert.Equal(t, http.StatusBadGateway, appErrors.FromError(err).Status)
	assert.Nil(t, analyses.created)
	assert.Nil(t, documents.created)
}

func TestAnalysisServiceLatestNilWhenAbsent(t *testing.T) {
	svc := NewAnalysisService(&fakeAnalysisRepo{}, &fakeDocumentRepo{}, &fakeAnalyzer{}, nil, nil)

	analysis, err := svc.Latest(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Nil(t, analysis)
}
