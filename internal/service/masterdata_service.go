package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type employeeRepo interface {
	Create(ctx context.Context, employee *models.Employee) error
	FindByID(ctx context.Context, id int64) (*models.Employee, error)
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
}

type shiftRepo interface {
	Create(ctx context.Context, shift *models.Shift) error
	FindByID(ctx context.Context, id int64) (*models.Shift, error)
	List(ctx context.Context) ([]models.Shift, error)
}

type availabilityRepo interface {
	Declare(ctx context.Context, employeeID int64, date time.Time) error
	Withdraw(ctx context.Context, employeeID int64, date time.Time) error
	ListAvailable(ctx context.Context, date time.Time) ([]int64, error)
}

type leaveRepo interface {
	Create(ctx context.Context, interval *models.LeaveInterval) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]models.LeaveInterval, error)
}

// EmployeeService manages employee master data.
type EmployeeService struct {
	employees employeeRepo
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees employeeRepo) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// Create registers an employee with a hashed password.
func (s *EmployeeService) Create(ctx context.Context, employee *models.Employee, password string) error {
	if employee.Role == "" {
		employee.Role = models.RoleEmployee
	}
	if employee.EmploymentStatus == "" {
		employee.EmploymentStatus = models.EmploymentActive
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	employee.PasswordHash = string(hash)
	if err := s.employees.Create(ctx, employee); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create employee")
	}
	return nil
}

// GetByID returns one employee.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("employee %d not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	return employee, nil
}

// List returns employees matching the filter.
func (s *EmployeeService) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	employees, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list employees")
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

// ShiftService manages the shift catalog.
type ShiftService struct {
	shifts shiftRepo
}

// NewShiftService constructs the service.
func NewShiftService(shifts shiftRepo) *ShiftService {
	return &ShiftService{shifts: shifts}
}

// Create adds a shift definition to the catalog.
func (s *ShiftService) Create(ctx context.Context, shift *models.Shift) error {
	if shift.Name == "" || shift.StartTime == "" || shift.EndTime == "" {
		return appErrors.Clone(appErrors.ErrValidation, "name, start time, and end time are required")
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create shift")
	}
	return nil
}

// GetByID returns one shift.
func (s *ShiftService) GetByID(ctx context.Context, id int64) (*models.Shift, error) {
	shift, err := s.shifts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("shift %d not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load shift")
	}
	return shift, nil
}

// List returns the full catalog.
func (s *ShiftService) List(ctx context.Context) ([]models.Shift, error) {
	shifts, err := s.shifts.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list shifts")
	}
	if shifts == nil {
		shifts = []models.Shift{}
	}
	return shifts, nil
}

// AvailabilityService manages availability facts.
type AvailabilityService struct {
	availability availabilityRepo
}

// NewAvailabilityService constructs the service.
func NewAvailabilityService(availability availabilityRepo) *AvailabilityService {
	return &AvailabilityService{availability: availability}
}

// Declare records willingness to work a date. Idempotent.
func (s *AvailabilityService) Declare(ctx context.Context, employeeID int64, date time.Time) error {
	if employeeID <= 0 || date.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "employee id and date are required")
	}
	if err := s.availability.Declare(ctx, employeeID, dateOnly(date)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to declare availability")
	}
	return nil
}

// Withdraw removes an availability fact.
func (s *AvailabilityService) Withdraw(ctx context.Context, employeeID int64, date time.Time) error {
	if employeeID <= 0 || date.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "employee id and date are required")
	}
	if err := s.availability.Withdraw(ctx, employeeID, dateOnly(date)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("employee %d has no availability on %s", employeeID, dateOnly(date).Format(models.DateFormat)))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to withdraw availability")
	}
	return nil
}

// ListAvailable returns employee ids available on a date.
func (s *AvailabilityService) ListAvailable(ctx context.Context, date time.Time) ([]int64, error) {
	if date.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	ids, err := s.availability.ListAvailable(ctx, dateOnly(date))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list availability")
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// LeaveService manages already-approved leave intervals.
type LeaveService struct {
	leaves leaveRepo
}

// NewLeaveService constructs the service.
func NewLeaveService(leaves leaveRepo) *LeaveService {
	return &LeaveService{leaves: leaves}
}

// Create records a leave interval.
func (s *LeaveService) Create(ctx context.Context, interval *models.LeaveInterval) error {
	if interval.EmployeeID <= 0 || interval.StartDate.IsZero() || interval.EndDate.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "employee id, start date, and end date are required")
	}
	interval.StartDate = dateOnly(interval.StartDate)
	interval.EndDate = dateOnly(interval.EndDate)
	if interval.EndDate.Before(interval.StartDate) {
		return appErrors.Clone(appErrors.ErrValidation, "end date must not precede start date")
	}
	if err := s.leaves.Create(ctx, interval); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create leave interval")
	}
	return nil
}

// ListByEmployee returns all intervals for one employee.
func (s *LeaveService) ListByEmployee(ctx context.Context, employeeID int64) ([]models.LeaveInterval, error) {
	if employeeID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "employee id is required")
	}
	intervals, err := s.leaves.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list leave intervals")
	}
	if intervals == nil {
		intervals = []models.LeaveInterval{}
	}
	return intervals, nil
}
