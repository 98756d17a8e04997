package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askiep/askiep-api/internal/service"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/response"
)

// CommHandler exposes the school communication log endpoints.
type CommHandler struct {
	comms *service.CommService
}

// NewCommHandler constructs CommHandler.
func NewCommHandler(comms *service.CommService) *CommHandler {
	return &CommHandler{comms: comms}
}

// List returns communication entries for a profile, newest first.
func (h *CommHandler) List(c *gin.Context) {
	entries, err := h.comms.List(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Add appends a communication entry.
func (h *CommHandler) Add(c *gin.Context) {
	var req service.AddCommRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid communication payload"))
		return
	}

	entry, err := h.comms.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}
