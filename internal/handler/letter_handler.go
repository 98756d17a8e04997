package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askiep/askiep-api/internal/service"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/response"
)

// LetterHandler exposes letter draft endpoints.
type LetterHandler struct {
	letters *service.LetterService
}

// NewLetterHandler constructs LetterHandler.
func NewLetterHandler(letters *service.LetterService) *LetterHandler {
	return &LetterHandler{letters: letters}
}

// List returns drafts for a profile, most recently edited first.
func (h *LetterHandler) List(c *gin.Context) {
	drafts, err := h.letters.List(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, drafts)
}

// Save creates a draft or re-saves an edited one.
func (h *LetterHandler) Save(c *gin.Context) {
	var req service.SaveLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid letter payload"))
		return
	}

	draft, created, err := h.letters.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, draft)
		return
	}
	response.JSON(c, http.StatusOK, draft)
}

// PDF streams a printable copy of a draft.
func (h *LetterHandler) PDF(c *gin.Context) {
	data, filename, err := h.letters.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
