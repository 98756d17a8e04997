package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/models"
	"github.com/askiep/askiep-api/internal/service"
)

type stubComplianceRepo struct{ logs []models.ComplianceLog }

func (s *stubComplianceRepo) Create(_ context.Context, log *models.ComplianceLog) error {
	log.ID = "c-1"
	return nil
}

func (s *stubComplianceRepo) ListByChild(context.Context, string) ([]models.ComplianceLog, error) {
	return s.logs, nil
}

type stubProgressRepo struct{}

func (stubProgressRepo) Create(context.Context, *models.GoalProgress) error { return nil }
func (stubProgressRepo) ListByChild(context.Context, string) ([]models.GoalProgress, error) {
	return nil, nil
}

func newComplianceHandler(repo *stubComplianceRepo) *ComplianceHandler {
	compliance := service.NewComplianceService(repo, nil, nil)
	stats := service.NewStatsService(repo, stubProgressRepo{}, nil, 0, nil, nil)
	return NewComplianceHandler(compliance, stats)
}

func TestComplianceHandlerAdd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newComplianceHandler(&stubComplianceRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"child_id":"p-1","date":"2026-08-28","service_type":"Speech Therapy","status":"Received"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/compliance", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Add(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var saved models.ComplianceLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "c-1", saved.ID)
}

func TestComplianceHandlerAddInvalidStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newComplianceHandler(&stubComplianceRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	body := `{"child_id":"p-1","date":"2026-08-28","service_type":"OT","status":"Skipped"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/compliance", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Add(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComplianceHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newComplianceHandler(&stubComplianceRepo{logs: []models.ComplianceLog{
		{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), ServiceType: "OT", Status: models.ComplianceMissed},
	}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/compliance/p-1/export", nil)
	c.Params = gin.Params{{Key: "childId", Value: "p-1"}}

	handler.Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "Date,Service,Status,Notes")
	assert.Contains(t, rec.Body.String(), "Missed")
}

func TestComplianceHandlerListEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newComplianceHandler(&stubComplianceRepo{logs: []models.ComplianceLog{}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/compliance/p-1", nil)
	c.Params = gin.Params{{Key: "childId", Value: "p-1"}}

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
