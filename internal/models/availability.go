package models

import "time"

// AvailabilityFact records that an employee is willing to work a date. It is
// a plain fact table; declaring availability twice is a no-op.
type AvailabilityFact struct {
	EmployeeID int64     `db:"employee_id" json:"employee_id"`
	WorkDate   time.Time `db:"work_date" json:"work_date"`
}
