package models

import "time"

// LetterDraft is a saved advocacy letter. The only child record that
// supports update-in-place.
type LetterDraft struct {
	ID         string    `db:"id" json:"id"`
	ChildID    string    `db:"child_id" json:"child_id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	Type       string    `db:"type" json:"type"`
	LastEdited time.Time `db:"last_edited" json:"last_edited"`
}
