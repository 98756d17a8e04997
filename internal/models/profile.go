package models

import (
	"time"

	"github.com/lib/pq"
)

// AdvocacyLevel describes how experienced the parent is with the IEP process.
type AdvocacyLevel string

const (
	AdvocacyBeginner     AdvocacyLevel = "Beginner"
	AdvocacyIntermediate AdvocacyLevel = "Intermediate"
	AdvocacyAdvanced     AdvocacyLevel = "Advanced"
)

// ChildProfile is the owning record for every other entity. One profile is
// created at onboarding and mutated through the profile screen.
type ChildProfile struct {
	ID            string         `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	Age           int            `db:"age" json:"age"`
	Grade         string         `db:"grade" json:"grade"`
	Disabilities  pq.StringArray `db:"disabilities" json:"disabilities"`
	FocusTags     pq.StringArray `db:"focus_tags" json:"focus_tags"`
	AdvocacyLevel string         `db:"advocacy_level" json:"advocacy_level"`
	PrimaryGoal   string         `db:"primary_goal" json:"primary_goal"`
	StateContext  string         `db:"state_context" json:"state_context"`
	LastIepDate   time.Time      `db:"last_iep_date" json:"last_iep_date"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}
