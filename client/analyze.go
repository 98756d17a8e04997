package client

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
	"github.com/askiep/askiep-api/pkg/jobs"
)

type analyzePayload struct {
	Text     string `json:"text"`
	ChildID  string `json:"child_id"`
	Filename string `json:"filename"`
}

// AnalyzeIEP runs the document through the model directly, persists the
// result locally and returns it. Server sync happens in the background;
// its failure is logged, never surfaced, since the returned analysis is
// already authoritative for the caller.
func (c *Client) AnalyzeIEP(ctx context.Context, text, childID, filename string) (*models.IepAnalysis, error) {
	if c.gateway == nil {
		return nil, appErrors.Wrap(nil, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "no AI gateway configured")
	}

	analysis, err := c.gateway.AnalyzeIEP(ctx, text)
	if err != nil {
		return nil, err
	}
	analysis.ChildID = childID
	analysis.ID = localID()
	analysis.CreatedAt = time.Now().UTC()
	c.store.Set(keyAnalysis, analysis)

	if filename != "" {
		doc := models.IepDocument{
			ID:        localID(),
			ChildID:   childID,
			Filename:  filename,
			Content:   text,
			CreatedAt: time.Now().UTC(),
		}
		var cached []models.IepDocument
		c.store.Get(keyDocuments, &cached)
		c.store.Set(keyDocuments, append([]models.IepDocument{doc}, cached...))
	}

	if err := c.sync.Enqueue(jobs.Job{
		ID:      analysis.ID,
		Type:    "analysis-sync",
		Payload: analyzePayload{Text: text, ChildID: childID, Filename: filename},
	}); err != nil {
		c.logger.Warn("analysis sync not scheduled", zap.Error(err))
	}

	return analysis, nil
}

// syncAnalysis pushes a locally produced analysis to the server. Runs on
// the background queue; exhausted retries drop the job with a log line.
func (c *Client) syncAnalysis(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(analyzePayload)
	if !ok {
		c.logger.Error("analysis sync job carried unexpected payload", zap.String("job", job.ID))
		return nil
	}
	return c.do(ctx, http.MethodPost, "/analyze", payload, nil)
}
