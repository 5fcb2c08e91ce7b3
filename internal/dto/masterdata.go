package dto

// CreateEmployeeRequest registers a new employee account.
type CreateEmployeeRequest struct {
	FullName         string `json:"full_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	Role             string `json:"role" validate:"omitempty,oneof=ADMIN EMPLOYEE"`
	PreferredShiftID *int64 `json:"preferred_shift_id" validate:"omitempty,gt=0"`
}

// CreateShiftRequest adds a shift to the catalog.
type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// AvailabilityRequest declares or withdraws willingness to work a date.
type AvailabilityRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required"`
}

// CreateLeaveRequest records an approved leave interval.
type CreateLeaveRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}
