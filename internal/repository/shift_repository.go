package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openrota/rota-api/internal/models"
)

// ShiftRepository stores the shift catalog. Shifts are immutable once
// created; there is deliberately no update method.
type ShiftRepository struct {
	db *sqlx.DB
}

// NewShiftRepository constructs the repository.
func NewShiftRepository(db *sqlx.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create inserts a shift definition.
func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	const query = `INSERT INTO shifts (name, start_time, end_time) VALUES ($1, $2, $3) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query, shift.Name, shift.StartTime, shift.EndTime)
	if err := row.Scan(&shift.ID); err != nil {
		return fmt.Errorf("create shift: %w", err)
	}
	return nil
}

// FindByID returns one shift.
func (r *ShiftRepository) FindByID(ctx context.Context, id int64) (*models.Shift, error) {
	const query = `SELECT id, name, start_time, end_time FROM shifts WHERE id = $1`
	var shift models.Shift
	if err := r.db.GetContext(ctx, &shift, query, id); err != nil {
		return nil, err
	}
	return &shift, nil
}

// List returns the full catalog ordered by start time.
func (r *ShiftRepository) List(ctx context.Context) ([]models.Shift, error) {
	const query = `SELECT id, name, start_time, end_time FROM shifts ORDER BY start_time ASC`
	var shifts []models.Shift
	if err := r.db.SelectContext(ctx, &shifts, query); err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return shifts, nil
}
