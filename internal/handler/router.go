package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Health     *HealthHandler
	Profile    *ProfileHandler
	Analysis   *AnalysisHandler
	Compliance *ComplianceHandler
	Progress   *ProgressHandler
	Comm       *CommHandler
	Behavior   *BehaviorHandler
	Letter     *LetterHandler
	Assistant  *AssistantHandler
	Stats      *StatsHandler
}

// RegisterRoutes attaches all endpoints under the given prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	api := r.Group(prefix)

	api.GET("/health", h.Health.Check)

	api.GET("/profile", h.Profile.Get)
	api.POST("/profile", h.Profile.Save)

	api.POST("/analyze", h.Analysis.Analyze)
	api.GET("/analysis/latest/:childId", h.Analysis.Latest)
	api.GET("/documents/:childId", h.Analysis.Documents)

	api.GET("/compliance/:childId", h.Compliance.List)
	api.POST("/compliance", h.Compliance.Add)
	api.GET("/compliance/:childId/export", h.Compliance.Export)

	api.GET("/progress/:childId", h.Progress.List)
	api.POST("/progress", h.Progress.Add)

	api.GET("/comms/:childId", h.Comm.List)
	api.POST("/comms", h.Comm.Add)

	api.GET("/behavior/:childId", h.Behavior.List)
	api.POST("/behavior", h.Behavior.Add)

	api.GET("/letters/:childId", h.Letter.List)
	api.POST("/letters", h.Letter.Save)
	api.GET("/letters/:childId/pdf/:id", h.Letter.PDF)

	api.GET("/stats/:childId", h.Stats.Get)

	api.POST("/compare", h.Assistant.Compare)
	api.POST("/letters/generate", h.Assistant.GenerateLetter)
	api.POST("/letters/revise", h.Assistant.ReviseLetter)
	api.POST("/meeting/simulate", h.Assistant.SimulateMeeting)
	api.POST("/legal/ask", h.Assistant.LegalAnswer)
}
