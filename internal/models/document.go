package models

import "time"

// IepDocument is an uploaded or pasted IEP text. Append-only.
type IepDocument struct {
	ID         string    `db:"id" json:"id"`
	ChildID    string    `db:"child_id" json:"child_id"`
	Filename   string    `db:"filename" json:"filename"`
	Content    string    `db:"content" json:"content,omitempty"`
	AnalysisID *string   `db:"analysis_id" json:"analysis_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
