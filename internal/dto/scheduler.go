package dto

// AutoAssignRequest triggers a batch run for one date. ShiftID overrides the
// configured default shift when set.
type AutoAssignRequest struct {
	Date    string `json:"date" validate:"required"`
	ShiftID int64  `json:"shift_id" validate:"omitempty,gt=0"`
}

// SkippedCandidate explains why an available employee was not assigned.
type SkippedCandidate struct {
	EmployeeID int64  `json:"employee_id"`
	Reason     string `json:"reason"`
}

// AutoAssignResult classifies every availability candidate for the date.
type AutoAssignResult struct {
	Date     string             `json:"date"`
	ShiftID  int64              `json:"shift_id"`
	Assigned []int64            `json:"assigned"`
	Skipped  []SkippedCandidate `json:"skipped"`
}
