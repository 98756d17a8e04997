package models

import "time"

// ChildStats are the dashboard aggregates computed from compliance and
// progress records at read time.
type ChildStats struct {
	ChildID        string    `json:"child_id"`
	ComplianceRate int       `json:"compliance_rate"`
	MasteryIndex   int       `json:"mastery_index"`
	TotalLogs      int       `json:"total_logs"`
	Received       int       `json:"received"`
	Partial        int       `json:"partial"`
	Missed         int       `json:"missed"`
	TotalGoals     int       `json:"total_goals"`
	Mastered       int       `json:"mastered"`
	Progressing    int       `json:"progressing"`
	GeneratedAt    time.Time `json:"generated_at"`
}
