package models

import "time"

// IepAnalysis is the structured output of an AI document analysis.
// Immutable after creation.
type IepAnalysis struct {
	ID             string      `db:"id" json:"id"`
	ChildID        string      `db:"child_id" json:"child_id"`
	Summary        string      `db:"summary" json:"summary"`
	Goals          StringList  `db:"goals" json:"goals"`
	Accommodations StringList  `db:"accommodations" json:"accommodations"`
	RedFlags       StringList  `db:"red_flags" json:"red_flags"`
	LegalLens      string      `db:"legal_lens" json:"legal_lens"`
	ServiceGrid    ServiceGrid `db:"service_grid" json:"service_grid,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
}

// IepComparison is the structured output of comparing two IEP versions.
// Not persisted; returned directly to the caller.
type IepComparison struct {
	Improvements []string `json:"improvements"`
	Regressions  []string `json:"regressions"`
	Unchanged    []string `json:"unchanged"`
	Verdict      string   `json:"verdict"`
}
