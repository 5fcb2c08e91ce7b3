package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openrota/rota-api/internal/models"
)

// AuditRepository appends and reads the immutable assignment audit trail.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository constructs the repository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends one event using the caller's executor, so the event commits
// or rolls back together with the mutation that triggered it.
func (r *AuditRepository) Record(ctx context.Context, exec sqlx.ExtContext, event *models.AuditEvent) error {
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_events (action, employee_id, shift_id, work_date, recorded_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	row := exec.QueryRowxContext(ctx, query, event.Action, event.EmployeeID, event.ShiftID, event.WorkDate, event.RecordedAt)
	if err := row.Scan(&event.ID); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

// List returns events matching the filter, oldest first.
func (r *AuditRepository) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEvent, error) {
	builder := strings.Builder{}
	args := make([]interface{}, 0, 4)
	builder.WriteString(`SELECT id, action, employee_id, shift_id, work_date, recorded_at FROM audit_events`)

	conditions := make([]string, 0, 4)
	if filter.EmployeeID > 0 {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		conditions = append(conditions, fmt.Sprintf("action = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("recorded_at >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("recorded_at <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY recorded_at ASC, id ASC")

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	builder.WriteString(fmt.Sprintf(" LIMIT %d", limit))

	var events []models.AuditEvent
	if err := r.db.SelectContext(ctx, &events, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return events, nil
}
