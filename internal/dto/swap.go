package dto

// CreateSwapRequest proposes a shift exchange between two employees.
type CreateSwapRequest struct {
	FromEmployeeID int64  `json:"from_employee_id" validate:"required,gt=0"`
	ToEmployeeID   int64  `json:"to_employee_id" validate:"required,gt=0"`
	Date           string `json:"date" validate:"required"`
}

// DecideSwapRequest records a reviewer decision.
type DecideSwapRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=APPROVE REJECT"`
}
