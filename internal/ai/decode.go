package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/askiep/askiep-api/internal/models"
)

// stripCodeFences removes markdown code blocks the model often wraps
// around JSON bodies.
func stripCodeFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

type analysisPayload struct {
	Summary        *string               `json:"summary"`
	Goals          *[]string             `json:"goals"`
	Accommodations *[]string             `json:"accommodations"`
	RedFlags       *[]string             `json:"redFlags"`
	LegalLens      *string               `json:"legalLens"`
	ServiceGrid    []models.ServiceEntry `json:"serviceGrid"`
}

// decodeAnalysis fails closed: a missing required field is an error, never
// silently defaulted.
func decodeAnalysis(raw string) (*models.IepAnalysis, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response body")
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("decode analysis json: %w", err)
	}

	switch {
	case payload.Summary == nil:
		return nil, fmt.Errorf("analysis missing required field %q", "summary")
	case payload.Goals == nil:
		return nil, fmt.Errorf("analysis missing required field %q", "goals")
	case payload.Accommodations == nil:
		return nil, fmt.Errorf("analysis missing required field %q", "accommodations")
	case payload.RedFlags == nil:
		return nil, fmt.Errorf("analysis missing required field %q", "redFlags")
	case payload.LegalLens == nil:
		return nil, fmt.Errorf("analysis missing required field %q", "legalLens")
	}

	return &models.IepAnalysis{
		Summary:        *payload.Summary,
		Goals:          models.StringList(*payload.Goals),
		Accommodations: models.StringList(*payload.Accommodations),
		RedFlags:       models.StringList(*payload.RedFlags),
		LegalLens:      *payload.LegalLens,
		ServiceGrid:    models.ServiceGrid(payload.ServiceGrid),
	}, nil
}

type comparisonPayload struct {
	Improvements *[]string `json:"improvements"`
	Regressions  *[]string `json:"regressions"`
	Unchanged    *[]string `json:"unchanged"`
	Verdict      *string   `json:"verdict"`
}

func decodeComparison(raw string) (*models.IepComparison, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty response body")
	}

	var payload comparisonPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("decode comparison json: %w", err)
	}

	switch {
	case payload.Improvements == nil:
		return nil, fmt.Errorf("comparison missing required field %q", "improvements")
	case payload.Regressions == nil:
		return nil, fmt.Errorf("comparison missing required field %q", "regressions")
	case payload.Unchanged == nil:
		return nil, fmt.Errorf("comparison missing required field %q", "unchanged")
	case payload.Verdict == nil:
		return nil, fmt.Errorf("comparison missing required field %q", "verdict")
	}

	return &models.IepComparison{
		Improvements: *payload.Improvements,
		Regressions:  *payload.Regressions,
		Unchanged:    *payload.Unchanged,
		Verdict:      *payload.Verdict,
	}, nil
}
