// Package stats holds the dashboard aggregate calculations. They are
// deliberately shared between the HTTP service and the API client so the
// offline path produces identical numbers.
package stats

import (
	"math"

	"github.com/askiep/askiep-api/internal/models"
)

// ComplianceRate returns the weighted delivery percentage for a set of
// compliance logs. "Partial" counts as half credit. Rounding is half away
// from zero. An empty set yields 0.
func ComplianceRate(logs []models.ComplianceLog) int {
	if len(logs) == 0 {
		return 0
	}
	var received, partial int
	for _, log := range logs {
		switch log.Status {
		case models.ComplianceReceived:
			received++
		case models.CompliancePartial:
			partial++
		}
	}
	score := (float64(received) + 0.5*float64(partial)) / float64(len(logs))
	return int(math.Round(score * 100))
}

// MasteryIndex returns the weighted goal mastery percentage.
// "Progressing" counts as half credit, mirroring ComplianceRate.
func MasteryIndex(goals []models.GoalProgress) int {
	if len(goals) == 0 {
		return 0
	}
	var mastered, progressing int
	for _, goal := range goals {
		switch goal.Status {
		case models.ProgressMastered:
			mastered++
		case models.ProgressProgressing:
			progressing++
		}
	}
	score := (float64(mastered) + 0.5*float64(progressing)) / float64(len(goals))
	return int(math.Round(score * 100))
}
