package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/askiep/askiep-api/internal/service"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/response"
)

// ComplianceHandler exposes service-delivery tracking endpoints.
type ComplianceHandler struct {
	compliance *service.ComplianceService
	stats      *service.StatsService
}

// NewComplianceHandler constructs ComplianceHandler.
func NewComplianceHandler(compliance *service.ComplianceService, stats *service.StatsService) *ComplianceHandler {
	return &ComplianceHandler{compliance: compliance, stats: stats}
}

// List returns compliance entries for a profile, newest first.
func (h *ComplianceHandler) List(c *gin.Context) {
	logs, err := h.compliance.List(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs)
}

// Add appends a compliance entry.
func (h *ComplianceHandler) Add(c *gin.Context) {
	var req service.AddComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid compliance payload"))
		return
	}

	log, err := h.compliance.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.stats.Invalidate(c.Request.Context(), req.ChildID)
	response.Created(c, log)
}

// Export streams the compliance history as a CSV download.
func (h *ComplianceHandler) Export(c *gin.Context) {
	data, err := h.compliance.ExportCSV(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("compliance-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
