package client

import (
	"time"

	"github.com/askiep/askiep-api/internal/models"
	"github.com/askiep/askiep-api/internal/stats"
)

// LocalStats computes the dashboard aggregates from locally cached records,
// mirroring the server-side formula so offline dashboards agree with the
// API once connectivity returns.
func (c *Client) LocalStats(childID string) models.ChildStats {
	var logs []models.ComplianceLog
	c.store.Get(keyCompliance, &logs)
	var goals []models.GoalProgress
	c.store.Get(keyProgress, &goals)

	return models.ChildStats{
		ChildID:        childID,
		ComplianceRate: stats.ComplianceRate(logs),
		MasteryIndex:   stats.MasteryIndex(goals),
		TotalLogs:      len(logs),
		TotalGoals:     len(goals),
		GeneratedAt:    time.Now().UTC(),
	}
}
