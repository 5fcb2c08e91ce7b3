package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/openrota/rota-api/internal/models"
)

// SwapRepository persists swap request workflow state.
type SwapRepository struct {
	db *sqlx.DB
}

// NewSwapRepository constructs the repository.
func NewSwapRepository(db *sqlx.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

// Create inserts a new pending request.
func (r *SwapRepository) Create(ctx context.Context, request *models.SwapRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.Status == "" {
		request.Status = models.SwapStatusPending
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO swap_requests (id, from_employee_id, to_employee_id, work_date, status, created_at)
		VALUES (:id, :from_employee_id, :to_employee_id, :work_date, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return fmt.Errorf("create swap request: %w", err)
	}
	return nil
}

// GetByID fetches a request by identifier.
func (r *SwapRepository) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	const query = `SELECT id, from_employee_id, to_employee_id, work_date, status, decided_at, created_at
		FROM swap_requests WHERE id = $1`
	var request models.SwapRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns requests, optionally narrowed to one status, latest first.
func (r *SwapRepository) List(ctx context.Context, status models.SwapStatus) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest
	if status == "" {
		const query = `SELECT id, from_employee_id, to_employee_id, work_date, status, decided_at, created_at
			FROM swap_requests ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &requests, query); err != nil {
			return nil, fmt.Errorf("list swap requests: %w", err)
		}
		return requests, nil
	}
	const query = `SELECT id, from_employee_id, to_employee_id, work_date, status, decided_at, created_at
		FROM swap_requests WHERE status = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &requests, query, status); err != nil {
		return nil, fmt.Errorf("list swap requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus flips a pending request to its terminal status on the
// caller's executor. The status guard makes the transition single-shot:
// sql.ErrNoRows means another decision already landed.
func (r *SwapRepository) UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id string, status models.SwapStatus, decidedAt time.Time) error {
	const query = `UPDATE swap_requests SET status = $1, decided_at = $2
		WHERE id = $3 AND status = 'PENDING'`
	result, err := exec.ExecContext(ctx, query, status, decidedAt, id)
	if err != nil {
		return fmt.Errorf("update swap status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check swap update rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
