package models

import "time"

// DateFormat is the wire format for roster dates.
const DateFormat = "2006-01-02"

// ShiftAssignment is the fact that an employee works a shift on a date.
// At most one assignment exists per (employee, date); rows are created and
// deleted through the assignment store only, never updated in place.
type ShiftAssignment struct {
	ID         int64     `db:"id" json:"id"`
	EmployeeID int64     `db:"employee_id" json:"employee_id"`
	ShiftID    int64     `db:"shift_id" json:"shift_id"`
	WorkDate   time.Time `db:"work_date" json:"work_date"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// AssignmentDetail joins assignment rows with shift and employee names for
// roster views.
type AssignmentDetail struct {
	EmployeeID   int64     `db:"employee_id" json:"employee_id"`
	EmployeeName string    `db:"employee_name" json:"employee_name"`
	ShiftID      int64     `db:"shift_id" json:"shift_id"`
	ShiftName    string    `db:"shift_name" json:"shift_name"`
	StartTime    string    `db:"start_time" json:"start_time"`
	EndTime      string    `db:"end_time" json:"end_time"`
	WorkDate     time.Time `db:"work_date" json:"work_date"`
}
