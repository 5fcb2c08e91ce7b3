package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openrota/rota-api/internal/models"
)

// EmployeeRepository stores employee master data.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository constructs the repository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO employees (full_name, email, password_hash, role, employment_status, preferred_shift_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query,
		employee.FullName, employee.Email, employee.PasswordHash, employee.Role,
		employee.EmploymentStatus, employee.PreferredShiftID, employee.CreatedAt)
	if err := row.Scan(&employee.ID); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// FindByID returns one employee.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*models.Employee, error) {
	const query = `SELECT id, full_name, email, password_hash, role, employment_status, preferred_shift_id, created_at
		FROM employees WHERE id = $1`
	var employee models.Employee
	if err := r.db.GetContext(ctx, &employee, query, id); err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail returns one employee by login email.
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	const query = `SELECT id, full_name, email, password_hash, role, employment_status, preferred_shift_id, created_at
		FROM employees WHERE email = $1`
	var employee models.Employee
	if err := r.db.GetContext(ctx, &employee, query, email); err != nil {
		return nil, err
	}
	return &employee, nil
}

// List returns employees, optionally narrowed by employment status.
func (r *EmployeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	var employees []models.Employee
	if filter.Status != "" {
		const query = `SELECT id, full_name, email, password_hash, role, employment_status, preferred_shift_id, created_at
			FROM employees WHERE employment_status = $1 ORDER BY full_name ASC`
		if err := r.db.SelectContext(ctx, &employees, query, filter.Status); err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		return employees, nil
	}
	const query = `SELECT id, full_name, email, password_hash, role, employment_status, preferred_shift_id, created_at
		FROM employees ORDER BY full_name ASC`
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}
