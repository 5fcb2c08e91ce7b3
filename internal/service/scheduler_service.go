package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/openrota/rota-api/internal/dto"
	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/pkg/config"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type availabilityLister interface {
	ListAvailable(ctx context.Context, date time.Time) ([]int64, error)
}

type assignmentStore interface {
	Assign(ctx context.Context, employeeID, shiftID int64, date time.Time) (*models.ShiftAssignment, error)
}

// SchedulerService runs the batch auto-assignment over declared availability.
type SchedulerService struct {
	availability availabilityLister
	store        assignmentStore
	cfg          config.SchedulerConfig
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewSchedulerService wires the scheduler. metrics may be nil.
func NewSchedulerService(availability availabilityLister, store assignmentStore, cfg config.SchedulerConfig, metrics *MetricsService, logger *zap.Logger) *SchedulerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchedulerService{availability: availability, store: store, cfg: cfg, metrics: metrics, logger: logger}
}

// AutoAssign assigns every available employee on the date to the target shift.
// Candidates already assigned or on leave are reported as skipped, never as
// failures, which makes the run idempotent: a second run over the same input
// assigns nobody and skips everyone as already assigned.
func (s *SchedulerService) AutoAssign(ctx context.Context, date time.Time, shiftID int64) (*dto.AutoAssignResult, error) {
	if date.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	if shiftID <= 0 {
		shiftID = s.cfg.DefaultShiftID
	}
	date = dateOnly(date)

	candidates, err := s.availability.ListAvailable(ctx, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list available employees")
	}

	result := &dto.AutoAssignResult{
		Date:     date.Format(models.DateFormat),
		ShiftID:  shiftID,
		Assigned: make([]int64, 0, len(candidates)),
		Skipped:  make([]dto.SkippedCandidate, 0),
	}

	for _, employeeID := range candidates {
		if _, err := s.store.Assign(ctx, employeeID, shiftID, date); err != nil {
			switch appErrors.CodeOf(err) {
			case appErrors.ErrDuplicateAssignment.Code:
				result.Skipped = append(result.Skipped, dto.SkippedCandidate{EmployeeID: employeeID, Reason: "already assigned"})
				continue
			case appErrors.ErrLeaveConflict.Code:
				result.Skipped = append(result.Skipped, dto.SkippedCandidate{EmployeeID: employeeID, Reason: "on leave"})
				continue
			}
			// Infrastructure failure aborts the run; completed assignments
			// stand, each already committed in its own transaction.
			return nil, err
		}
		result.Assigned = append(result.Assigned, employeeID)
	}

	if s.metrics != nil {
		s.metrics.RecordAutoAssignRun()
	}
	s.logger.Info("auto-assign run completed",
		zap.String("date", result.Date),
		zap.Int64("shift_id", shiftID),
		zap.Int("assigned", len(result.Assigned)),
		zap.Int("skipped", len(result.Skipped)))
	return result, nil
}
