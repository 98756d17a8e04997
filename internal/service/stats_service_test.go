package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/models"
)

type staticComplianceRepo struct{ logs []models.ComplianceLog }

func (r staticComplianceRepo) Create(context.Context, *models.ComplianceLog) error { return nil }
func (r staticComplianceRepo) ListByChild(context.Context, string) ([]models.ComplianceLog, error) {
	return r.logs, nil
}

type staticProgressRepo struct{ goals []models.GoalProgress }

func (r staticProgressRepo) Create(context.Context, *models.GoalProgress) error { return nil }
func (r staticProgressRepo) ListByChild(context.Context, string) ([]models.GoalProgress, error) {
	return r.goals, nil
}

func TestStatsServiceAggregates(t *testing.T) {
	compliance := staticComplianceRepo{logs: []models.ComplianceLog{
		{Status: models.ComplianceReceived},
		{Status: models.ComplianceReceived},
		{Status: models.ComplianceReceived},
		{Status: models.CompliancePartial},
	}}
	progress := staticProgressRepo{goals: []models.GoalProgress{
		{Status: models.ProgressMastered},
		{Status: models.ProgressProgressing},
		{Status: models.ProgressEmerging},
		{Status: models.ProgressRegression},
	}}
	svc := NewStatsService(compliance, progress, nil, 0, nil, nil)

	result, err := svc.Stats(context.Background(), "p-1")
	require.NoError(t, err)

	// (3 + 0.5) / 4 = 87.5 -> 88
	assert.Equal(t, 88, result.ComplianceRate)
	// (1 + 0.5) / 4 = 37.5 -> 38
	assert.Equal(t, 38, result.MasteryIndex)
	assert.Equal(t, 4, result.TotalLogs)
	assert.Equal(t, 3, result.Received)
	assert.Equal(t, 1, result.Partial)
	assert.Equal(t, 0, result.Missed)
	assert.Equal(t, 1, result.Mastered)
	assert.Equal(t, 1, result.Progressing)
	assert.Equal(t, "p-1", result.ChildID)
}

func TestStatsServiceEmpty(t *testing.T) {
	svc := NewStatsService(staticComplianceRepo{}, staticProgressRepo{}, nil, 0, nil, nil)

	result, err := svc.Stats(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Zero(t, result.ComplianceRate)
	assert.Zero(t, result.MasteryIndex)
	assert.Zero(t, result.TotalLogs)
}
