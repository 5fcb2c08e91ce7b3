package models

import "time"

// LeaveInterval is an inclusive date range during which an employee must not
// be assigned. Intervals for one employee may overlap; an employee is on
// leave when the date falls inside any of them.
type LeaveInterval struct {
	ID         int64     `db:"id" json:"id"`
	EmployeeID int64     `db:"employee_id" json:"employee_id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
}
