package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type rosterRepoStub struct {
	details []models.AssignmentDetail
}

func (s rosterRepoStub) ListByDate(context.Context, time.Time) ([]models.AssignmentDetail, error) {
	return s.details, nil
}

type unassignedListerStub struct {
	ids []int64
}

func (s unassignedListerStub) ListUnassignedAvailable(context.Context, time.Time) ([]int64, error) {
	return s.ids, nil
}

func newRosterFixture(details []models.AssignmentDetail, unassigned []int64) *RosterService {
	return NewRosterService(rosterRepoStub{details: details}, unassignedListerStub{ids: unassigned}, nil, 0, nil)
}

func TestRosterServiceListByDate(t *testing.T) {
	date := testDate(t, "2026-03-02")
	details := []models.AssignmentDetail{
		{EmployeeID: 1, EmployeeName: "Ana", ShiftID: 2, ShiftName: "Evening", StartTime: "14:00", EndTime: "22:00", WorkDate: date},
	}
	service := newRosterFixture(details, nil)

	result, err := service.ListByDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Ana", result[0].EmployeeName)
}

func TestRosterServiceListUnassigned(t *testing.T) {
	service := newRosterFixture(nil, []int64{4, 9})

	ids, err := service.ListUnassigned(context.Background(), testDate(t, "2026-03-02"))
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 9}, ids)
}

func TestRosterServiceExportCSV(t *testing.T) {
	date := testDate(t, "2026-03-02")
	details := []models.AssignmentDetail{
		{EmployeeID: 1, EmployeeName: "Ana", ShiftID: 2, ShiftName: "Evening", StartTime: "14:00", EndTime: "22:00", WorkDate: date},
		{EmployeeID: 3, EmployeeName: "Ben", ShiftID: 1, ShiftName: "Morning", StartTime: "06:00", EndTime: "14:00", WorkDate: date},
	}
	service := newRosterFixture(details, nil)

	payload, contentType, err := service.Export(context.Background(), date, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Employee ID")
	assert.Contains(t, lines[1], "Ana")
	assert.Contains(t, lines[2], "Morning")
}

func TestRosterServiceExportPDF(t *testing.T) {
	date := testDate(t, "2026-03-02")
	service := newRosterFixture(nil, nil)

	payload, contentType, err := service.Export(context.Background(), date, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestRosterServiceExportUnknownFormat(t *testing.T) {
	service := newRosterFixture(nil, nil)

	_, _, err := service.Export(context.Background(), testDate(t, "2026-03-02"), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.CodeOf(err))
}
