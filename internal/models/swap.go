package models

import "time"

// SwapStatus enumerates the swap request state machine. Pending is the only
// non-terminal state.
type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "PENDING"
	SwapStatusApproved SwapStatus = "APPROVED"
	SwapStatusRejected SwapStatus = "REJECTED"
)

// SwapOutcome is a reviewer decision.
type SwapOutcome string

const (
	SwapOutcomeApprove SwapOutcome = "APPROVE"
	SwapOutcomeReject  SwapOutcome = "REJECT"
)

// SwapRequest proposes exchanging two employees' shifts on one date.
type SwapRequest struct {
	ID             string     `db:"id" json:"id"`
	FromEmployeeID int64      `db:"from_employee_id" json:"from_employee_id"`
	ToEmployeeID   int64      `db:"to_employee_id" json:"to_employee_id"`
	WorkDate       time.Time  `db:"work_date" json:"work_date"`
	Status         SwapStatus `db:"status" json:"status"`
	DecidedAt      *time.Time `db:"decided_at" json:"decided_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
