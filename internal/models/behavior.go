package models

import "time"

// BehaviorLog is an antecedent/behavior/consequence observation.
// Intensity is constrained to 1..5. Append-only.
type BehaviorLog struct {
	ID              string    `db:"id" json:"id"`
	ChildID         string    `db:"child_id" json:"child_id"`
	Date            time.Time `db:"date" json:"date"`
	Time            string    `db:"time" json:"time"`
	Antecedent      string    `db:"antecedent" json:"antecedent"`
	Behavior        string    `db:"behavior" json:"behavior"`
	Consequence     string    `db:"consequence" json:"consequence"`
	Intensity       int       `db:"intensity" json:"intensity"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
