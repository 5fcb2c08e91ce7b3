package dto

// CreateAssignmentRequest assigns an employee to a shift on a date.
type CreateAssignmentRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	ShiftID    int64  `json:"shift_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required"`
}

// RemoveAssignmentRequest clears an employee's assignment on a date.
type RemoveAssignmentRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required"`
}

// ReassignRequest moves an employee to a different shift on the same date.
type ReassignRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required"`
	NewShiftID int64  `json:"new_shift_id" validate:"required,gt=0"`
}
