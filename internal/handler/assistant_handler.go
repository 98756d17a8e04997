package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askiep/askiep-api/internal/service"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/response"
)

// AssistantHandler exposes the stateless AI endpoints.
type AssistantHandler struct {
	assistant *service.AssistantService
}

// NewAssistantHandler constructs AssistantHandler.
func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Compare contrasts two IEP versions.
func (h *AssistantHandler) Compare(c *gin.Context) {
	var req service.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid comparison payload"))
		return
	}

	comparison, err := h.assistant.Compare(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comparison)
}

// GenerateLetter drafts a new advocacy letter.
func (h *AssistantHandler) GenerateLetter(c *gin.Context) {
	var req service.GenerateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid letter request"))
		return
	}

	letter, err := h.assistant.GenerateLetter(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"letter": letter})
}

// ReviseLetter rewrites an existing draft.
func (h *AssistantHandler) ReviseLetter(c *gin.Context) {
	var req service.ReviseLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid revision request"))
		return
	}

	letter, err := h.assistant.ReviseLetter(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"letter": letter})
}

// SimulateMeeting plays one turn of a mock IEP team meeting.
func (h *AssistantHandler) SimulateMeeting(c *gin.Context) {
	var req service.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting payload"))
		return
	}

	reply, err := h.assistant.SimulateMeeting(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"reply": reply})
}

// LegalAnswer answers a plain-English IDEA question.
func (h *AssistantHandler) LegalAnswer(c *gin.Context) {
	var req service.LegalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid question payload"))
		return
	}

	answer, err := h.assistant.LegalAnswer(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"answer": answer})
}
