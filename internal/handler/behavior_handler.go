package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/askiep/askiep-api/internal/service"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/response"
)

// BehaviorHandler exposes behavior observation endpoints.
type BehaviorHandler struct {
	behaviors *service.BehaviorService
}

// NewBehaviorHandler constructs BehaviorHandler.
func NewBehaviorHandler(behaviors *service.BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{behaviors: behaviors}
}

// List returns behavior entries for a profile, newest first.
func (h *BehaviorHandler) List(c *gin.Context) {
	logs, err := h.behaviors.List(c.Request.Context(), c.Param("childId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs)
}

// Add appends a behavior observation.
func (h *BehaviorHandler) Add(c *gin.Context) {
	var req service.AddBehaviorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid behavior payload"))
		return
	}

	log, err := h.behaviors.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, log)
}
