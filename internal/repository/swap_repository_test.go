package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/rota-api/internal/models"
)

func TestSwapRepositoryCreateFillsDefaults(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSwapRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO swap_requests")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	request := &models.SwapRequest{
		FromEmployeeID: 1,
		ToEmployeeID:   2,
		WorkDate:       mustDate(t, "2026-03-02"),
	}
	require.NoError(t, repo.Create(context.Background(), request))
	assert.NotEmpty(t, request.ID)
	assert.Equal(t, models.SwapStatusPending, request.Status)
	assert.False(t, request.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapRepositoryGetByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSwapRepository(db)
	date := mustDate(t, "2026-03-02")

	rows := sqlmock.NewRows([]string{"id", "from_employee_id", "to_employee_id", "work_date", "status", "decided_at", "created_at"}).
		AddRow("swap-1", int64(1), int64(2), date, "PENDING", nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, from_employee_id, to_employee_id")).
		WithArgs("swap-1").
		WillReturnRows(rows)

	found, err := repo.GetByID(context.Background(), "swap-1")
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusPending, found.Status)
	assert.Nil(t, found.DecidedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapRepositoryUpdateStatusGuarded(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSwapRepository(db)
	decidedAt := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE swap_requests SET status")).
		WithArgs(models.SwapStatusApproved, decidedAt, "swap-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(context.Background(), db, "swap-1", models.SwapStatusApproved, decidedAt))

	// A second decision matches no pending row.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE swap_requests SET status")).
		WithArgs(models.SwapStatusRejected, decidedAt, "swap-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateStatus(context.Background(), db, "swap-1", models.SwapStatusRejected, decidedAt)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapRepositoryListByStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSwapRepository(db)
	date := mustDate(t, "2026-03-02")

	rows := sqlmock.NewRows([]string{"id", "from_employee_id", "to_employee_id", "work_date", "status", "decided_at", "created_at"}).
		AddRow("swap-2", int64(3), int64(4), date, "PENDING", nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, from_employee_id, to_employee_id")).
		WithArgs(models.SwapStatusPending).
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), models.SwapStatusPending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "swap-2", list[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
