package models

import "time"

// Audit actions emitted by the assignment store.
const (
	AuditActionAssigned = "Assigned"
	AuditActionRemoved  = "Removed"
)

// AuditEvent is one immutable record of a change to assignment state. The
// BIGSERIAL id doubles as the monotonically increasing sequence; rows are
// never updated or deleted.
type AuditEvent struct {
	ID         int64     `db:"id" json:"id"`
	Action     string    `db:"action" json:"action"`
	EmployeeID int64     `db:"employee_id" json:"employee_id"`
	ShiftID    *int64    `db:"shift_id" json:"shift_id,omitempty"`
	WorkDate   time.Time `db:"work_date" json:"work_date"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}

// AuditFilter narrows audit trail listings.
type AuditFilter struct {
	EmployeeID int64
	Action     string
	From       time.Time
	To         time.Time
	Limit      int
}
