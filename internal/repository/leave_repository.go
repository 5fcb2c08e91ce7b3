package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openrota/rota-api/internal/models"
)

// LeaveRepository stores already-approved leave intervals.
type LeaveRepository struct {
	db *sqlx.DB
}

// NewLeaveRepository constructs the repository.
func NewLeaveRepository(db *sqlx.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// Create records a leave interval. Overlapping intervals for the same
// employee are tolerated redundancy.
func (r *LeaveRepository) Create(ctx context.Context, interval *models.LeaveInterval) error {
	const query = `INSERT INTO leave_intervals (employee_id, start_date, end_date)
		VALUES ($1, $2, $3) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query, interval.EmployeeID, interval.StartDate, interval.EndDate)
	if err := row.Scan(&interval.ID); err != nil {
		return fmt.Errorf("create leave interval: %w", err)
	}
	return nil
}

// ListByEmployee returns all intervals for an employee.
func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]models.LeaveInterval, error) {
	const query = `SELECT id, employee_id, start_date, end_date
		FROM leave_intervals WHERE employee_id = $1 ORDER BY start_date ASC`
	var intervals []models.LeaveInterval
	if err := r.db.SelectContext(ctx, &intervals, query, employeeID); err != nil {
		return nil, fmt.Errorf("list leave intervals: %w", err)
	}
	return intervals, nil
}

// IsOnLeave reports whether the date falls inside any interval for the
// employee. Runs on the caller's executor so the assignment store can check
// it inside the mutating transaction.
func (r *LeaveRepository) IsOnLeave(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (bool, error) {
	const query = `SELECT 1 FROM leave_intervals
		WHERE employee_id = $1 AND start_date <= $2 AND end_date >= $2 LIMIT 1`
	var exists int
	if err := sqlx.GetContext(ctx, exec, &exists, query, employeeID, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check leave: %w", err)
	}
	return true, nil
}
