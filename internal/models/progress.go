package models

import "time"

// ProgressStatus is the closed set of goal advancement states.
type ProgressStatus string

const (
	ProgressEmerging    ProgressStatus = "Emerging"
	ProgressProgressing ProgressStatus = "Progressing"
	ProgressMastered    ProgressStatus = "Mastered"
	ProgressRegression  ProgressStatus = "Regression"
)

// GoalProgress is one tracked measurement toward an IEP goal. History is a
// sequence of rows, not an in-place mutation.
type GoalProgress struct {
	ID           string         `db:"id" json:"id"`
	ChildID      string         `db:"child_id" json:"child_id"`
	GoalName     string         `db:"goal_name" json:"goal_name"`
	CurrentValue string         `db:"current_value" json:"current_value"`
	TargetValue  string         `db:"target_value" json:"target_value"`
	Status       ProgressStatus `db:"status" json:"status"`
	LastUpdated  time.Time      `db:"last_updated" json:"last_updated"`
}
