package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
	"github.com/openrota/rota-api/pkg/export"
)

type rosterRepo interface {
	ListByDate(ctx context.Context, date time.Time) ([]models.AssignmentDetail, error)
}

type unassignedLister interface {
	ListUnassignedAvailable(ctx context.Context, date time.Time) ([]int64, error)
}

// RosterService serves read views over the day's assignments, with optional
// Redis caching and CSV/PDF export.
type RosterService struct {
	assignments rosterRepo
	available   unassignedLister
	cache       *CacheService
	cacheTTL    time.Duration
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	logger      *zap.Logger
}

// NewRosterService wires the read side. cache may be nil.
func NewRosterService(assignments rosterRepo, available unassignedLister, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		assignments: assignments,
		available:   available,
		cache:       cache,
		cacheTTL:    cacheTTL,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		logger:      logger,
	}
}

// ListByDate returns the roster for one date, employee order.
func (s *RosterService) ListByDate(ctx context.Context, date time.Time) ([]models.AssignmentDetail, error) {
	if date.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	date = dateOnly(date)

	key := RosterCacheKey("assignments", date)
	var cached []models.AssignmentDetail
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	details, err := s.assignments.ListByDate(ctx, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list roster")
	}
	if details == nil {
		details = []models.AssignmentDetail{}
	}
	_ = s.cache.Set(ctx, key, details, s.cacheTTL)
	return details, nil
}

// ListUnassigned returns employees who declared availability for the date but
// hold no assignment.
func (s *RosterService) ListUnassigned(ctx context.Context, date time.Time) ([]int64, error) {
	if date.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	date = dateOnly(date)

	key := RosterCacheKey("unassigned", date)
	var cached []int64
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, nil
	}

	ids, err := s.available.ListUnassignedAvailable(ctx, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list unassigned employees")
	}
	if ids == nil {
		ids = []int64{}
	}
	_ = s.cache.Set(ctx, key, ids, s.cacheTTL)
	return ids, nil
}

// Export renders the date's roster as "csv" or "pdf".
func (s *RosterService) Export(ctx context.Context, date time.Time, format string) ([]byte, string, error) {
	details, err := s.ListByDate(ctx, date)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Employee ID", "Employee", "Shift", "Start", "End"},
		Rows:    make([]map[string]string, 0, len(details)),
	}
	for _, detail := range details {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Employee ID": strconv.FormatInt(detail.EmployeeID, 10),
			"Employee":    detail.EmployeeName,
			"Shift":       detail.ShiftName,
			"Start":       detail.StartTime,
			"End":         detail.EndTime,
		})
	}

	switch strings.ToLower(format) {
	case "csv", "":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		title := fmt.Sprintf("Roster %s", dateOnly(date).Format(models.DateFormat))
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
