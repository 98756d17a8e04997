package models

import "time"

// ContactMethod is the closed set of communication channels.
type ContactMethod string

const (
	MethodEmail    ContactMethod = "Email"
	MethodPhone    ContactMethod = "Phone"
	MethodInPerson ContactMethod = "In-person"
	MethodMeeting  ContactMethod = "IEP Meeting"
)

// CommLogEntry records one interaction with school staff. Append-only.
type CommLogEntry struct {
	ID             string        `db:"id" json:"id"`
	ChildID        string        `db:"child_id" json:"child_id"`
	Date           time.Time     `db:"date" json:"date"`
	ContactName    string        `db:"contact_name" json:"contact_name"`
	Method         ContactMethod `db:"method" json:"method"`
	Summary        string        `db:"summary" json:"summary"`
	FollowUpNeeded bool          `db:"follow_up_needed" json:"follow_up_needed"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
}
