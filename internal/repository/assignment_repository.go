package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/openrota/rota-api/internal/models"
)

// AssignmentRepository persists shift assignment facts. Mutating methods take
// a sqlx.ExtContext so the service layer can scope them to one transaction
// together with the audit write.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// FindByEmployeeDate returns the assignment for (employee, date), or nil when
// none exists.
func (r *AssignmentRepository) FindByEmployeeDate(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (*models.ShiftAssignment, error) {
	const query = `SELECT id, employee_id, shift_id, work_date, created_at
		FROM shift_assignments WHERE employee_id = $1 AND work_date = $2`
	var assignment models.ShiftAssignment
	if err := sqlx.GetContext(ctx, exec, &assignment, query, employeeID, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return &assignment, nil
}

// Insert stores a new assignment row. The unique index on
// (employee_id, work_date) arbitrates racing writers.
func (r *AssignmentRepository) Insert(ctx context.Context, exec sqlx.ExtContext, assignment *models.ShiftAssignment) error {
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO shift_assignments (employee_id, shift_id, work_date, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	row := exec.QueryRowxContext(ctx, query, assignment.EmployeeID, assignment.ShiftID, assignment.WorkDate, assignment.CreatedAt)
	if err := row.Scan(&assignment.ID); err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// Delete removes the assignment for (employee, date). Returns sql.ErrNoRows
// when no row existed.
func (r *AssignmentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) error {
	const query = `DELETE FROM shift_assignments WHERE employee_id = $1 AND work_date = $2`
	result, err := exec.ExecContext(ctx, query, employeeID, date)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted assignment rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByDate returns the roster for a date with employee and shift names.
func (r *AssignmentRepository) ListByDate(ctx context.Context, date time.Time) ([]models.AssignmentDetail, error) {
	const query = `
SELECT sa.employee_id, e.full_name AS employee_name, sa.shift_id, s.name AS shift_name,
	s.start_time, s.end_time, sa.work_date
FROM shift_assignments sa
JOIN employees e ON e.id = sa.employee_id
JOIN shifts s ON s.id = sa.shift_id
WHERE sa.work_date = $1
ORDER BY s.start_time ASC, e.full_name ASC`
	var details []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &details, query, date); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return details, nil
}

// IsUniqueViolation reports whether err is the Postgres unique constraint
// violation raised when two writers race the same (employee, date) pair.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
