package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type txProviderMock struct {
	db   *sqlx.DB
	mock sqlmock.Sqlmock
}

func newTxProviderMock(t *testing.T) (*txProviderMock, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { db.Close() })
	return &txProviderMock{db: sqlxdb, mock: mock}, mock
}

func (t *txProviderMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return t.db.BeginTxx(ctx, opts)
}

func assignmentKey(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", employeeID, date.Format(models.DateFormat))
}

type assignmentRepoStub struct {
	rows   map[string]*models.ShiftAssignment
	nextID int64
}

func newAssignmentRepoStub() *assignmentRepoStub {
	return &assignmentRepoStub{rows: make(map[string]*models.ShiftAssignment)}
}

func (s *assignmentRepoStub) FindByEmployeeDate(_ context.Context, _ sqlx.ExtContext, employeeID int64, date time.Time) (*models.ShiftAssignment, error) {
	if row, ok := s.rows[assignmentKey(employeeID, date)]; ok {
		copied := *row
		return &copied, nil
	}
	return nil, nil
}

func (s *assignmentRepoStub) Insert(_ context.Context, _ sqlx.ExtContext, assignment *models.ShiftAssignment) error {
	key := assignmentKey(assignment.EmployeeID, assignment.WorkDate)
	if _, ok := s.rows[key]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	s.nextID++
	assignment.ID = s.nextID
	copied := *assignment
	s.rows[key] = &copied
	return nil
}

func (s *assignmentRepoStub) Delete(_ context.Context, _ sqlx.ExtContext, employeeID int64, date time.Time) error {
	key := assignmentKey(employeeID, date)
	if _, ok := s.rows[key]; !ok {
		return sql.ErrNoRows
	}
	delete(s.rows, key)
	return nil
}

type leaveCheckerStub struct {
	onLeave map[int64]bool
}

func (s leaveCheckerStub) IsOnLeave(_ context.Context, _ sqlx.ExtContext, employeeID int64, _ time.Time) (bool, error) {
	return s.onLeave[employeeID], nil
}

type auditRecorderStub struct {
	events []models.AuditEvent
}

func (s *auditRecorderStub) Record(_ context.Context, _ sqlx.ExtContext, event *models.AuditEvent) error {
	event.ID = int64(len(s.events) + 1)
	s.events = append(s.events, *event)
	return nil
}

type assignmentFixture struct {
	service *AssignmentService
	repo    *assignmentRepoStub
	audit   *auditRecorderStub
	mock    sqlmock.Sqlmock
}

func newAssignmentFixture(t *testing.T, onLeave map[int64]bool) assignmentFixture {
	repo := newAssignmentRepoStub()
	audit := &auditRecorderStub{}
	tx, mock := newTxProviderMock(t)
	svc := NewAssignmentService(repo, leaveCheckerStub{onLeave: onLeave}, audit, tx, nil, nil, nil)
	return assignmentFixture{service: svc, repo: repo, audit: audit, mock: mock}
}

func testDate(t *testing.T, raw string) time.Time {
	t.Helper()
	date, err := time.Parse(models.DateFormat, raw)
	require.NoError(t, err)
	return date
}

func TestAssignmentServiceAssignSuccess(t *testing.T) {
	f := newAssignmentFixture(t, nil)
	date := testDate(t, "2026-03-02")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	assignment, err := f.service.Assign(context.Background(), 7, 2, date)
	require.NoError(t, err)
	assert.Equal(t, int64(7), assignment.EmployeeID)
	assert.Equal(t, int64(2), assignment.ShiftID)
	assert.NotZero(t, assignment.ID)

	require.Len(t, f.audit.events, 1)
	assert.Equal(t, models.AuditActionAssigned, f.audit.events[0].Action)
	assert.Equal(t, int64(7), f.audit.events[0].EmployeeID)
	require.NotNil(t, f.audit.events[0].ShiftID)
	assert.Equal(t, int64(2), *f.audit.events[0].ShiftID)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAssignmentServiceAssignDuplicate(t *testing.T) {
	f := newAssignmentFixture(t, nil)
	date := testDate(t, "2026-03-02")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	_, err := f.service.Assign(context.Background(), 7, 2, date)
	require.NoError(t, err)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	_, err = f.service.Assign(context.Background(), 7, 3, date)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateAssignment.Code, appErrors.CodeOf(err))

	// The failed attempt must leave no audit trace.
	assert.Len(t, f.audit.events, 1)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAssignmentServiceAssignLeaveConflict(t *testing.T) {
	f := newAssignmentFixture(t, map[int64]bool{7: true})
	date := testDate(t, "2026-03-02")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.service.Assign(context.Background(), 7, 2, date)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrLeaveConflict.Code, appErrors.CodeOf(err))
	assert.Empty(t, f.repo.rows)
	assert.Empty(t, f.audit.events)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAssignmentServiceRemoveNotFound(t *testing.T) {
	f := newAssignmentFixture(t, nil)
	date := testDate(t, "2026-03-02")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.service.Remove(context.Background(), 7, date)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.CodeOf(err))
	assert.Empty(t, f.audit.events)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAssignmentServiceRemoveRecordsAudit(t *testing.T) {
	f := newAssignmentFixture(t, nil)
	date := testDate(t, "2026-03-02")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	_, err := f.service.Assign(context.Background(), 7, 2, date)
	require.NoError(t, err)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.service.Remove(context.Background(), 7, date))

	assert.Empty(t, f.repo.rows)
	require.Len(t, f.audit.events, 2)
	assert.Equal(t, models.AuditActionRemoved, f.audit.events[1].Action)
	require.NotNil(t, f.audit.events[1].ShiftID)
	assert.Equal(t, int64(2), *f.audit.events[1].ShiftID)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAssignmentServiceReassign(t *testing.T) {
	f := newAssignmentFixture(t, nil)
	date := testDate(t, "2026-03-02")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	_, err := f.service.Assign(context.Background(), 7, 1, date)
	require.NoError(t, err)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	assignment, err := f.service.Reassign(context.Background(), 7, date, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), assignment.ShiftID)

	require.Len(t, f.audit.events, 3)
	assert.Equal(t, models.AuditActionRemoved, f.audit.events[1].Action)
	assert.Equal(t, models.AuditActionAssigned, f.audit.events[2].Action)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAssignmentServiceReassignMissingRollsBack(t *testing.T) {
	f := newAssignmentFixture(t, nil)
	date := testDate(t, "2026-03-02")

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.service.Reassign(context.Background(), 7, date, 3)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.CodeOf(err))
	assert.Empty(t, f.repo.rows)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestAssignmentServiceValidatesInput(t *testing.T) {
	f := newAssignmentFixture(t, nil)

	_, err := f.service.Assign(context.Background(), 0, 1, testDate(t, "2026-03-02"))
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.CodeOf(err))

	_, err = f.service.Assign(context.Background(), 1, 1, time.Time{})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.CodeOf(err))
}
