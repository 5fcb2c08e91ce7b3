package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type swapRepoStub struct {
	requests map[string]*models.SwapRequest
	next     int
}

func newSwapRepoStub() *swapRepoStub {
	return &swapRepoStub{requests: make(map[string]*models.SwapRequest)}
}

func (s *swapRepoStub) Create(_ context.Context, request *models.SwapRequest) error {
	s.next++
	request.ID = fmt.Sprintf("swap-%d", s.next)
	request.Status = models.SwapStatusPending
	request.CreatedAt = time.Now().UTC()
	copied := *request
	s.requests[request.ID] = &copied
	return nil
}

func (s *swapRepoStub) GetByID(_ context.Context, id string) (*models.SwapRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *request
	return &copied, nil
}

func (s *swapRepoStub) List(_ context.Context, status models.SwapStatus) ([]models.SwapRequest, error) {
	var result []models.SwapRequest
	for _, request := range s.requests {
		if status == "" || request.Status == status {
			result = append(result, *request)
		}
	}
	return result, nil
}

func (s *swapRepoStub) UpdateStatus(_ context.Context, _ sqlx.ExtContext, id string, status models.SwapStatus, decidedAt time.Time) error {
	request, ok := s.requests[id]
	if !ok || request.Status != models.SwapStatusPending {
		return sql.ErrNoRows
	}
	request.Status = status
	request.DecidedAt = &decidedAt
	return nil
}

type swapFixture struct {
	service *SwapService
	swaps   *swapRepoStub
	store   assignmentFixture
}

// newSwapFixture wires a SwapService over a real AssignmentService so
// approvals exercise the same precondition path production uses. Both
// services share one transaction provider, as they do in main.
func newSwapFixture(t *testing.T, onLeave map[int64]bool) swapFixture {
	repo := newAssignmentRepoStub()
	audit := &auditRecorderStub{}
	tx, mock := newTxProviderMock(t)
	storeSvc := NewAssignmentService(repo, leaveCheckerStub{onLeave: onLeave}, audit, tx, nil, nil, nil)
	swaps := newSwapRepoStub()
	svc := NewSwapService(swaps, storeSvc, tx, nil, nil, nil)
	return swapFixture{
		service: svc,
		swaps:   swaps,
		store:   assignmentFixture{service: storeSvc, repo: repo, audit: audit, mock: mock},
	}
}

func (f swapFixture) seedAssignment(t *testing.T, employeeID, shiftID int64, date time.Time) {
	t.Helper()
	f.store.mock.ExpectBegin()
	f.store.mock.ExpectCommit()
	_, err := f.store.service.Assign(context.Background(), employeeID, shiftID, date)
	require.NoError(t, err)
}

func TestSwapServiceCreateRejectsSelfSwap(t *testing.T) {
	f := newSwapFixture(t, nil)

	_, err := f.service.Create(context.Background(), 3, 3, testDate(t, "2026-03-02"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidSwap.Code, appErrors.CodeOf(err))
	assert.Empty(t, f.swaps.requests)
}

func TestSwapServiceCreatePending(t *testing.T) {
	f := newSwapFixture(t, nil)

	request, err := f.service.Create(context.Background(), 1, 2, testDate(t, "2026-03-02"))
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, request.Status)
	assert.Nil(t, request.DecidedAt)
	assert.Len(t, f.swaps.requests, 1)
}

func TestSwapServiceApproveExchangesAssignments(t *testing.T) {
	f := newSwapFixture(t, nil)
	date := testDate(t, "2026-03-02")
	f.seedAssignment(t, 1, 10, date)
	f.seedAssignment(t, 2, 20, date)

	request, err := f.service.Create(context.Background(), 1, 2, date)
	require.NoError(t, err)

	f.store.mock.ExpectBegin()
	f.store.mock.ExpectCommit()
	decided, err := f.service.Decide(context.Background(), request.ID, models.SwapOutcomeApprove)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	first := f.store.repo.rows[assignmentKey(1, date)]
	second := f.store.repo.rows[assignmentKey(2, date)]
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, int64(20), first.ShiftID)
	assert.Equal(t, int64(10), second.ShiftID)

	// Two seeds plus the exchange: two removals and two assignments.
	require.Len(t, f.store.audit.events, 6)
	assert.Equal(t, models.AuditActionRemoved, f.store.audit.events[2].Action)
	assert.Equal(t, models.AuditActionRemoved, f.store.audit.events[3].Action)
	assert.Equal(t, models.AuditActionAssigned, f.store.audit.events[4].Action)
	assert.Equal(t, models.AuditActionAssigned, f.store.audit.events[5].Action)
}

func TestSwapServiceApproveOneSided(t *testing.T) {
	f := newSwapFixture(t, nil)
	date := testDate(t, "2026-03-02")
	f.seedAssignment(t, 1, 10, date)

	request, err := f.service.Create(context.Background(), 1, 2, date)
	require.NoError(t, err)

	f.store.mock.ExpectBegin()
	f.store.mock.ExpectCommit()
	decided, err := f.service.Decide(context.Background(), request.ID, models.SwapOutcomeApprove)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusApproved, decided.Status)

	// The requester ends the day unassigned; the counterparty takes the shift.
	assert.Nil(t, f.store.repo.rows[assignmentKey(1, date)])
	second := f.store.repo.rows[assignmentKey(2, date)]
	require.NotNil(t, second)
	assert.Equal(t, int64(10), second.ShiftID)
}

func TestSwapServiceApproveNoShiftToSwap(t *testing.T) {
	f := newSwapFixture(t, nil)
	date := testDate(t, "2026-03-02")

	request, err := f.service.Create(context.Background(), 1, 2, date)
	require.NoError(t, err)

	f.store.mock.ExpectBegin()
	f.store.mock.ExpectRollback()
	_, err = f.service.Decide(context.Background(), request.ID, models.SwapOutcomeApprove)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNoShiftToSwap.Code, appErrors.CodeOf(err))

	// The request survives the failed approval and can be decided later.
	reloaded, err := f.service.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, reloaded.Status)
}

func TestSwapServiceApproveBlockedByLeave(t *testing.T) {
	f := newSwapFixture(t, map[int64]bool{2: true})
	date := testDate(t, "2026-03-02")
	f.seedAssignment(t, 1, 10, date)

	request, err := f.service.Create(context.Background(), 1, 2, date)
	require.NoError(t, err)

	f.store.mock.ExpectBegin()
	f.store.mock.ExpectRollback()
	_, err = f.service.Decide(context.Background(), request.ID, models.SwapOutcomeApprove)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSwapBlocked.Code, appErrors.CodeOf(err))

	reloaded, err := f.service.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, reloaded.Status)
}

func TestSwapServiceReject(t *testing.T) {
	f := newSwapFixture(t, nil)
	date := testDate(t, "2026-03-02")
	f.seedAssignment(t, 1, 10, date)

	request, err := f.service.Create(context.Background(), 1, 2, date)
	require.NoError(t, err)

	f.store.mock.ExpectBegin()
	f.store.mock.ExpectCommit()
	decided, err := f.service.Decide(context.Background(), request.ID, models.SwapOutcomeReject)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusRejected, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	// Rejection never touches assignments.
	first := f.store.repo.rows[assignmentKey(1, date)]
	require.NotNil(t, first)
	assert.Equal(t, int64(10), first.ShiftID)
}

func TestSwapServiceDecideTwice(t *testing.T) {
	f := newSwapFixture(t, nil)
	date := testDate(t, "2026-03-02")

	request, err := f.service.Create(context.Background(), 1, 2, date)
	require.NoError(t, err)

	f.store.mock.ExpectBegin()
	f.store.mock.ExpectCommit()
	_, err = f.service.Decide(context.Background(), request.ID, models.SwapOutcomeReject)
	require.NoError(t, err)

	_, err = f.service.Decide(context.Background(), request.ID, models.SwapOutcomeApprove)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAlreadyDecided.Code, appErrors.CodeOf(err))
}

func TestSwapServiceDecideUnknownRequest(t *testing.T) {
	f := newSwapFixture(t, nil)

	_, err := f.service.Decide(context.Background(), "missing", models.SwapOutcomeApprove)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.CodeOf(err))
}
