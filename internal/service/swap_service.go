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
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type swapRepo interface {
	Create(ctx context.Context, request *models.SwapRequest) error
	GetByID(ctx context.Context, id string) (*models.SwapRequest, error)
	List(ctx context.Context, status models.SwapStatus) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, exec sqlx.ExtContext, id string, status models.SwapStatus, decidedAt time.Time) error
}

type swapAssignmentStore interface {
	FindTx(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (*models.ShiftAssignment, error)
	AssignTx(ctx context.Context, exec sqlx.ExtContext, employeeID, shiftID int64, date time.Time) (*models.ShiftAssignment, error)
	RemoveTx(ctx context.Context, exec sqlx.ExtContext, employeeID int64, date time.Time) (*models.ShiftAssignment, error)
}

// SwapService runs the swap request workflow. Requests are created pending
// and settle exactly once into APPROVED or REJECTED; an approval exchanges
// the two employees' assignments in the same transaction that flips the
// status.
type SwapService struct {
	swaps   swapRepo
	store   swapAssignmentStore
	tx      txProvider
	cache   rosterInvalidator
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSwapService wires the workflow. cache and metrics may be nil.
func NewSwapService(swaps swapRepo, store swapAssignmentStore, tx txProvider, cache rosterInvalidator, metrics *MetricsService, logger *zap.Logger) *SwapService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwapService{swaps: swaps, store: store, tx: tx, cache: cache, metrics: metrics, logger: logger}
}

// Create registers a pending swap request. A request from an employee to
// themselves is rejected before any row is written.
func (s *SwapService) Create(ctx context.Context, fromEmployeeID, toEmployeeID int64, date time.Time) (*models.SwapRequest, error) {
	if fromEmployeeID <= 0 || toEmployeeID <= 0 || date.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "both employee ids and a date are required")
	}
	if fromEmployeeID == toEmployeeID {
		return nil, appErrors.Clone(appErrors.ErrInvalidSwap, "cannot request a swap with yourself")
	}

	request := &models.SwapRequest{
		FromEmployeeID: fromEmployeeID,
		ToEmployeeID:   toEmployeeID,
		WorkDate:       dateOnly(date),
	}
	if err := s.swaps.Create(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create swap request")
	}
	return request, nil
}

// GetByID returns one request.
func (s *SwapService) GetByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	request, err := s.swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("swap request %s not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load swap request")
	}
	return request, nil
}

// List returns requests, optionally narrowed to one status.
func (s *SwapService) List(ctx context.Context, status models.SwapStatus) ([]models.SwapRequest, error) {
	requests, err := s.swaps.List(ctx, status)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list swap requests")
	}
	return requests, nil
}

// Decide settles a pending request with the given outcome.
func (s *SwapService) Decide(ctx context.Context, id string, outcome models.SwapOutcome) (*models.SwapRequest, error) {
	request, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.SwapStatusPending {
		return nil, appErrors.Clone(appErrors.ErrAlreadyDecided,
			fmt.Sprintf("swap request %s is already %s", id, request.Status))
	}

	switch outcome {
	case models.SwapOutcomeApprove:
		return s.approve(ctx, request)
	case models.SwapOutcomeReject:
		return s.reject(ctx, request)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "outcome must be APPROVE or REJECT")
	}
}

// approve exchanges the two assignments and flips the status, all in one
// transaction. A precondition failure on either side rolls everything back
// and leaves the request pending.
func (s *SwapService) approve(ctx context.Context, request *models.SwapRequest) (*models.SwapRequest, error) {
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}

	fromAssignment, err := s.store.FindTx(ctx, tx, request.FromEmployeeID, request.WorkDate)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if fromAssignment == nil {
		_ = tx.Rollback()
		return nil, appErrors.Clone(appErrors.ErrNoShiftToSwap,
			fmt.Sprintf("employee %d holds no shift on %s", request.FromEmployeeID, request.WorkDate.Format(models.DateFormat)))
	}

	// The counterparty may hold nothing; the swap then becomes one-sided and
	// the requester ends the day unassigned.
	toAssignment, err := s.store.FindTx(ctx, tx, request.ToEmployeeID, request.WorkDate)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if _, err := s.store.RemoveTx(ctx, tx, request.FromEmployeeID, request.WorkDate); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if toAssignment != nil {
		if _, err := s.store.RemoveTx(ctx, tx, request.ToEmployeeID, request.WorkDate); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	if _, err := s.store.AssignTx(ctx, tx, request.ToEmployeeID, fromAssignment.ShiftID, request.WorkDate); err != nil {
		_ = tx.Rollback()
		return nil, blockedOrInternal(err, request.ToEmployeeID)
	}
	if toAssignment != nil {
		if _, err := s.store.AssignTx(ctx, tx, request.FromEmployeeID, toAssignment.ShiftID, request.WorkDate); err != nil {
			_ = tx.Rollback()
			return nil, blockedOrInternal(err, request.FromEmployeeID)
		}
	}

	decidedAt := time.Now().UTC()
	if err := s.swaps.UpdateStatus(ctx, tx, request.ID, models.SwapStatusApproved, decidedAt); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrAlreadyDecided,
				fmt.Sprintf("swap request %s was decided concurrently", request.ID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update swap status")
	}
	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit swap approval")
	}

	request.Status = models.SwapStatusApproved
	request.DecidedAt = &decidedAt
	s.afterDecision(ctx, string(models.SwapOutcomeApprove), request.WorkDate)
	s.logger.Info("swap request approved",
		zap.String("id", request.ID),
		zap.Int64("from", request.FromEmployeeID),
		zap.Int64("to", request.ToEmployeeID),
		zap.String("date", request.WorkDate.Format(models.DateFormat)))
	return request, nil
}

func (s *SwapService) reject(ctx context.Context, request *models.SwapRequest) (*models.SwapRequest, error) {
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin transaction")
	}

	decidedAt := time.Now().UTC()
	if err := s.swaps.UpdateStatus(ctx, tx, request.ID, models.SwapStatusRejected, decidedAt); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrAlreadyDecided,
				fmt.Sprintf("swap request %s was decided concurrently", request.ID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update swap status")
	}
	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit swap rejection")
	}

	request.Status = models.SwapStatusRejected
	request.DecidedAt = &decidedAt
	if s.metrics != nil {
		s.metrics.RecordSwapDecision(string(models.SwapOutcomeReject))
	}
	return request, nil
}

func (s *SwapService) afterDecision(ctx context.Context, outcome string, date time.Time) {
	if s.metrics != nil {
		s.metrics.RecordSwapDecision(outcome)
	}
	if s.cache != nil {
		s.cache.InvalidateDate(ctx, date)
	}
}

// blockedOrInternal maps a precondition failure on the receiving side to the
// blocked-swap error; infrastructure errors pass through untouched.
func blockedOrInternal(err error, employeeID int64) error {
	switch appErrors.CodeOf(err) {
	case appErrors.ErrDuplicateAssignment.Code, appErrors.ErrLeaveConflict.Code:
		return appErrors.Clone(appErrors.ErrSwapBlocked,
			fmt.Sprintf("employee %d cannot take the swapped shift", employeeID))
	}
	return err
}
