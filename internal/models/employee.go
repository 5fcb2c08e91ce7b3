package models

import "time"

// Employment status values.
const (
	EmploymentActive   = "ACTIVE"
	EmploymentInactive = "INACTIVE"
)

// Roles recognised by the API.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Employee is roster master data. The assignment engine references employees
// by id only; status and preferred shift are informational.
type Employee struct {
	ID               int64     `db:"id" json:"id"`
	FullName         string    `db:"full_name" json:"full_name"`
	Email            string    `db:"email" json:"email"`
	PasswordHash     string    `db:"password_hash" json:"-"`
	Role             string    `db:"role" json:"role"`
	EmploymentStatus string    `db:"employment_status" json:"employment_status"`
	PreferredShiftID *int64    `db:"preferred_shift_id" json:"preferred_shift_id,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// EmployeeFilter describes query params for listing employees.
type EmployeeFilter struct {
	Status string
	Page   int
	Limit  int
}
