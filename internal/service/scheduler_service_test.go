package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/pkg/config"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type availabilityListerStub struct {
	ids []int64
	err error
}

func (s availabilityListerStub) ListAvailable(context.Context, time.Time) ([]int64, error) {
	return s.ids, s.err
}

// storeStub mimics the assignment store's precondition behavior without a
// database: one assignment per employee per date, leave blocks assignment.
type storeStub struct {
	assigned map[string]int64
	onLeave  map[int64]bool
	failFor  map[int64]error
}

func newStoreStub() *storeStub {
	return &storeStub{assigned: make(map[string]int64), onLeave: make(map[int64]bool), failFor: make(map[int64]error)}
}

func (s *storeStub) Assign(_ context.Context, employeeID, shiftID int64, date time.Time) (*models.ShiftAssignment, error) {
	if err := s.failFor[employeeID]; err != nil {
		return nil, err
	}
	key := assignmentKey(employeeID, date)
	if _, ok := s.assigned[key]; ok {
		return nil, appErrors.Clone(appErrors.ErrDuplicateAssignment, "")
	}
	if s.onLeave[employeeID] {
		return nil, appErrors.Clone(appErrors.ErrLeaveConflict, "")
	}
	s.assigned[key] = shiftID
	return &models.ShiftAssignment{EmployeeID: employeeID, ShiftID: shiftID, WorkDate: date}, nil
}

func newSchedulerFixture(ids []int64, store *storeStub) *SchedulerService {
	return NewSchedulerService(
		availabilityListerStub{ids: ids},
		store,
		config.SchedulerConfig{DefaultShiftID: 1},
		nil, nil)
}

func TestSchedulerServiceAutoAssignClassifiesCandidates(t *testing.T) {
	date := testDate(t, "2026-03-02")
	store := newStoreStub()
	store.onLeave[5] = true
	_, err := store.Assign(context.Background(), 2, 1, date)
	require.NoError(t, err)

	service := newSchedulerFixture([]int64{1, 2, 3, 4, 5}, store)
	result, err := service.AutoAssign(context.Background(), date, 0)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", result.Date)
	assert.Equal(t, int64(1), result.ShiftID)
	assert.Equal(t, []int64{1, 3, 4}, result.Assigned)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, int64(2), result.Skipped[0].EmployeeID)
	assert.Equal(t, "already assigned", result.Skipped[0].Reason)
	assert.Equal(t, int64(5), result.Skipped[1].EmployeeID)
	assert.Equal(t, "on leave", result.Skipped[1].Reason)
}

func TestSchedulerServiceAutoAssignIsIdempotent(t *testing.T) {
	date := testDate(t, "2026-03-02")
	store := newStoreStub()
	service := newSchedulerFixture([]int64{1, 2, 3}, store)

	first, err := service.AutoAssign(context.Background(), date, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, first.Assigned)
	assert.Empty(t, first.Skipped)

	second, err := service.AutoAssign(context.Background(), date, 0)
	require.NoError(t, err)
	assert.Empty(t, second.Assigned)
	require.Len(t, second.Skipped, 3)
	for _, skipped := range second.Skipped {
		assert.Equal(t, "already assigned", skipped.Reason)
	}
}

func TestSchedulerServiceAutoAssignUsesExplicitShift(t *testing.T) {
	date := testDate(t, "2026-03-02")
	store := newStoreStub()
	service := newSchedulerFixture([]int64{1}, store)

	result, err := service.AutoAssign(context.Background(), date, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.ShiftID)
	assert.Equal(t, int64(4), store.assigned[assignmentKey(1, date)])
}

func TestSchedulerServiceAutoAssignAbortsOnInfrastructureError(t *testing.T) {
	date := testDate(t, "2026-03-02")
	store := newStoreStub()
	store.failFor[2] = appErrors.Wrap(errors.New("connection reset"), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "insert failed")

	service := newSchedulerFixture([]int64{1, 2, 3}, store)
	_, err := service.AutoAssign(context.Background(), date, 0)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.CodeOf(err))

	// Employee 1 was committed before the failure and stays assigned.
	_, ok := store.assigned[assignmentKey(1, date)]
	assert.True(t, ok)
	_, ok = store.assigned[assignmentKey(3, date)]
	assert.False(t, ok)
}

func TestSchedulerServiceAutoAssignRequiresDate(t *testing.T) {
	service := newSchedulerFixture(nil, newStoreStub())
	_, err := service.AutoAssign(context.Background(), time.Time{}, 0)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.CodeOf(err))
}
