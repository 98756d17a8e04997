package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askiep/askiep-api/internal/service"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/response"
)

// AnalysisHandler exposes the IEP analysis pipeline.
type AnalysisHandler struct {
	analyses *service.AnalysisService
}

// NewAnalysisHandler constructs AnalysisHandler.
func NewAnalysisHandler(analyses *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analyses: analyses}
}

// Analyze runs a document through the model and stores the result.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req service.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid analysis payload"))
		return
	}

	analysis, err := h.analyses.Analyze(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, analysis)
}

// Latest returns the most recent stored analysis, or null.
func (h *AnalysisHandler) Latest(c *gin.Context) {
	analysis, err := h.analyses.Latest(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, analysis)
}

// Documents lists uploaded document metadata for a profile.
func (h *AnalysisHandler) Documents(c *gin.Context) {
	docs, err := h.analyses.Documents(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, docs)
}
