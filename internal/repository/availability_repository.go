package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AvailabilityRepository stores availability facts.
type AvailabilityRepository struct {
	db *sqlx.DB
}

// NewAvailabilityRepository constructs the repository.
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Declare records willingness to work a date. Declaring twice is a no-op.
func (r *AvailabilityRepository) Declare(ctx context.Context, employeeID int64, date time.Time) error {
	const query = `INSERT INTO availability_facts (employee_id, work_date)
		VALUES ($1, $2) ON CONFLICT (employee_id, work_date) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("declare availability: %w", err)
	}
	return nil
}

// Withdraw removes the fact; returns sql.ErrNoRows when it was not declared.
func (r *AvailabilityRepository) Withdraw(ctx context.Context, employeeID int64, date time.Time) error {
	const query = `DELETE FROM availability_facts WHERE employee_id = $1 AND work_date = $2`
	result, err := r.db.ExecContext(ctx, query, employeeID, date)
	if err != nil {
		return fmt.Errorf("withdraw availability: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check withdrawn availability rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAvailable returns employee ids with an availability fact for the date.
func (r *AvailabilityRepository) ListAvailable(ctx context.Context, date time.Time) ([]int64, error) {
	const query = `SELECT employee_id FROM availability_facts WHERE work_date = $1 ORDER BY employee_id ASC`
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, date); err != nil {
		return nil, fmt.Errorf("list available employees: %w", err)
	}
	return ids, nil
}

// ListUnassignedAvailable returns the set difference of availability and
// assignments for the date.
func (r *AvailabilityRepository) ListUnassignedAvailable(ctx context.Context, date time.Time) ([]int64, error) {
	const query = `
SELECT af.employee_id
FROM availability_facts af
LEFT JOIN shift_assignments sa ON sa.employee_id = af.employee_id AND sa.work_date = af.work_date
WHERE af.work_date = $1 AND sa.id IS NULL
ORDER BY af.employee_id ASC`
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, date); err != nil {
		return nil, fmt.Errorf("list unassigned available employees: %w", err)
	}
	return ids, nil
}
