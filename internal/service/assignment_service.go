package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/internal/repository"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type assignmentRepo interface {
	FindByEmployeeDate(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (*models.ShiftAssignment, error)
	Insert(ctx context.Context, exec sqlx.ExtContext, assignment *models.ShiftAssignment) error
	Delete(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) error
}

type leaveChecker interface {
	IsOnLeave(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (bool, error)
}

type auditRecorder interface {
	Record(ctx context.Context, exec sqlx.ExtContext, event *models.AuditEvent) error
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type rosterInvalidator interface {
	InvalidateDate(ctx context.Context, date time.Time)
}

// AssignmentService is the assignment store: the single writer of shift
// assignment facts. Every mutation runs the precondition checks, the row
// change, and the audit write inside one transaction, so an assignment is
// never observable without its audit event.
type AssignmentService struct {
	assignments assignmentRepo
	leaves      leaveChecker
	audit       auditRecorder
	tx          txProvider
	cache       rosterInvalidator
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewAssignmentService wires the store. cache and metrics may be nil.
func NewAssignmentService(
	assignments assignmentRepo,
	leaves leaveChecker,
	audit auditRecorder,
	tx txProvider,
	cache rosterInvalidator,
	metrics *MetricsService,
	logger *zap.Logger,
) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		assignments: assignments,
		leaves:      leaves,
		audit:       audit,
		tx:          tx,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

// Assign creates the assignment for (employee, date) or reports why not.
func (s *AssignmentService) Assign(ctx context.Context, employeeID, shiftID int64, date time.Time) (*models.ShiftAssignment, error) {
	if err := validateAssignmentInput(employeeID, shiftID, date); err != nil {
		return nil, err
	}
	date = dateOnly(date)

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	assignment, err := s.AssignTx(ctx, tx, employeeID, shiftID, date)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit assignment")
	}

	s.afterMutation(ctx, models.AuditActionAssigned, date)
	return assignment, nil
}

// AssignTx runs the uniqueness and leave preconditions, the insert, and the
// audit write on the caller's executor. The swap workflow composes it with
// removals inside a single transaction.
func (s *AssignmentService) AssignTx(ctx context.Context, exec sqlx.ExtContext, employeeID, shiftID int64, date time.Time) (*models.ShiftAssignment, error) {
	existing, err := s.assignments.FindByEmployeeDate(ctx, exec, employeeID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing assignment")
	}
	if existing != nil {
		return nil, appErrors.Clone(appErrors.ErrDuplicateAssignment,
			fmt.Sprintf("employee %d already assigned on %s", employeeID, date.Format(models.DateFormat)))
	}

	onLeave, err := s.leaves.IsOnLeave(ctx, exec, employeeID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check leave")
	}
	if onLeave {
		return nil, appErrors.Clone(appErrors.ErrLeaveConflict,
			fmt.Sprintf("employee %d is on leave on %s", employeeID, date.Format(models.DateFormat)))
	}

	assignment := &models.ShiftAssignment{EmployeeID: employeeID, ShiftID: shiftID, WorkDate: date}
	if err := s.assignments.Insert(ctx, exec, assignment); err != nil {
		if repository.IsUniqueViolation(err) {
			// A concurrent writer won the race between the check and the insert.
			return nil, appErrors.Clone(appErrors.ErrDuplicateAssignment,
				fmt.Sprintf("employee %d already assigned on %s", employeeID, date.Format(models.DateFormat)))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert assignment")
	}

	event := &models.AuditEvent{
		Action:     models.AuditActionAssigned,
		EmployeeID: employeeID,
		ShiftID:    &shiftID,
		WorkDate:   date,
	}
	if err := s.audit.Record(ctx, exec, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record audit event")
	}
	return assignment, nil
}

// Remove deletes the assignment for (employee, date).
func (s *AssignmentService) Remove(ctx context.Context, employeeID int64, date time.Time) error {
	if employeeID <= 0 || date.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "employee id and date are required")
	}
	date = dateOnly(date)

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	if _, err := s.RemoveTx(ctx, tx, employeeID, date); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit removal")
	}

	s.afterMutation(ctx, models.AuditActionRemoved, date)
	return nil
}

// RemoveTx deletes the row and records the audit event on the caller's
// executor. Returns the removed assignment.
func (s *AssignmentService) RemoveTx(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (*models.ShiftAssignment, error) {
	existing, err := s.assignments.FindByEmployeeDate(ctx, exec, employeeID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	if existing == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound,
			fmt.Sprintf("no assignment for employee %d on %s", employeeID, date.Format(models.DateFormat)))
	}
	if err := s.assignments.Delete(ctx, exec, employeeID, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("no assignment for employee %d on %s", employeeID, date.Format(models.DateFormat)))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete assignment")
	}

	shiftID := existing.ShiftID
	event := &models.AuditEvent{
		Action:     models.AuditActionRemoved,
		EmployeeID: employeeID,
		ShiftID:    &shiftID,
		WorkDate:   date,
	}
	if err := s.audit.Record(ctx, exec, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record audit event")
	}
	return existing, nil
}

// FindTx reads the current assignment on the caller's executor; nil when the
// employee holds no shift that date.
func (s *AssignmentService) FindTx(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (*models.ShiftAssignment, error) {
	assignment, err := s.assignments.FindByEmployeeDate(ctx, exec, employeeID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	return assignment, nil
}

// Reassign moves an employee to a different shift on the same date. Removal
// and re-insert share one transaction; a failing second half rolls back the
// first.
func (s *AssignmentService) Reassign(ctx context.Context, employeeID int64, date time.Time, newShiftID int64) (*models.ShiftAssignment, error) {
	if err := validateAssignmentInput(employeeID, newShiftID, date); err != nil {
		return nil, err
	}
	date = dateOnly(date)

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}
	if _, err := s.RemoveTx(ctx, tx, employeeID, date); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	assignment, err := s.AssignTx(ctx, tx, employeeID, newShiftID, date)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit reassignment")
	}

	s.afterMutation(ctx, models.AuditActionAssigned, date)
	return assignment, nil
}

func (s *AssignmentService) afterMutation(ctx context.Context, action string, date time.Time) {
	if s.metrics != nil {
		s.metrics.RecordAssignmentMutation(action)
	}
	if s.cache != nil {
		s.cache.InvalidateDate(ctx, date)
	}
}

func validateAssignmentInput(employeeID, shiftID int64, date time.Time) error {
	if employeeID <= 0 || shiftID <= 0 || date.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "employee id, shift id, and date are required")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
