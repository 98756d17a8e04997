package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askiep/askiep-api/internal/service"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/response"
)

// ProgressHandler exposes goal-progress endpoints.
type ProgressHandler struct {
	progress *service.ProgressService
	stats    *service.StatsService
}

// NewProgressHandler constructs ProgressHandler.
func NewProgressHandler(progress *service.ProgressService, stats *service.StatsService) *ProgressHandler {
	return &ProgressHandler{progress: progress, stats: stats}
}

// List returns progress entries for a profile, newest first.
func (h *ProgressHandler) List(c *gin.Context) {
	entries, err := h.progress.List(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Add appends a progress measurement.
func (h *ProgressHandler) Add(c *gin.Context) {
	var req service.AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid progress payload"))
		return
	}

	entry, err := h.progress.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.stats.Invalidate(c.Request.Context(), req.ChildID)
	response.Created(c, entry)
}
