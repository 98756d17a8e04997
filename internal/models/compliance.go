package models

import "time"

// ComplianceStatus records whether a mandated service was delivered.
type ComplianceStatus string

const (
	ComplianceReceived ComplianceStatus = "Received"
	CompliancePartial  ComplianceStatus = "Partial"
	ComplianceMissed   ComplianceStatus = "Missed"
)

// ComplianceLog is one observed service-delivery event. Append-only.
type ComplianceLog struct {
	ID          string           `db:"id" json:"id"`
	ChildID     string           `db:"child_id" json:"child_id"`
	Date        time.Time        `db:"date" json:"date"`
	ServiceType string           `db:"service_type" json:"service_type"`
	Status      ComplianceStatus `db:"status" json:"status"`
	Notes       string           `db:"notes" json:"notes"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}
