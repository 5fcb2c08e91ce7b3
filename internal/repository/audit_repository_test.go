package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/rota-api/internal/models"
)

func TestAuditRepositoryRecord(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	shiftID := int64(2)
	event := &models.AuditEvent{
		Action:     models.AuditActionAssigned,
		EmployeeID: 7,
		ShiftID:    &shiftID,
		WorkDate:   mustDate(t, "2026-03-02"),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO audit_events")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	require.NoError(t, repo.Record(context.Background(), db, event))
	assert.Equal(t, int64(9), event.ID)
	assert.False(t, event.RecordedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	date := mustDate(t, "2026-03-02")
	shiftID := int64(2)

	rows := sqlmock.NewRows([]string{"id", "action", "employee_id", "shift_id", "work_date", "recorded_at"}).
		AddRow(int64(1), "Assigned", int64(7), shiftID, date, time.Now()).
		AddRow(int64(2), "Removed", int64(7), shiftID, date, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, action, employee_id, shift_id, work_date, recorded_at FROM audit_events")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), models.AuditFilter{EmployeeID: 7})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.AuditActionAssigned, events[0].Action)
	assert.Equal(t, models.AuditActionRemoved, events[1].Action)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryListCapsLimit(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT 100")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "employee_id", "shift_id", "work_date", "recorded_at"}))

	_, err := repo.List(context.Background(), models.AuditFilter{Limit: 100000})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
