package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openrota/rota-api/internal/dto"
	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/internal/service"
	appErrors "github.com/openrota/rota-api/pkg/errors"
	"github.com/openrota/rota-api/pkg/response"
)

type leaveManager interface {
	Create(ctx context.Context, interval *models.LeaveInterval) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]models.LeaveInterval, error)
}

// LeaveHandler exposes approved leave intervals.
type LeaveHandler struct {
	service leaveManager
}

// NewLeaveHandler constructs the handler.
func NewLeaveHandler(svc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: svc}
}

// Create godoc
// @Summary Record an approved leave interval
// @Tags Leaves
// @Accept json
// @Produce json
// @Param payload body dto.CreateLeaveRequest true "Leave payload"
// @Success 201 {object} response.Envelope
// @Router /leaves [post]
func (h *LeaveHandler) Create(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	interval := &models.LeaveInterval{EmployeeID: req.EmployeeID, StartDate: startDate, EndDate: endDate}
	if err := h.service.Create(c.Request.Context(), interval); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, interval)
}

// ListByEmployee godoc
// @Summary List leave intervals for one employee
// @Tags Leaves
// @Produce json
// @Param employeeId path int true "Employee ID"
// @Success 200 {object} response.Envelope
// @Router /leaves/{employeeId} [get]
func (h *LeaveHandler) ListByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Param("employeeId"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "employee id must be numeric"))
		return
	}
	intervals, err := h.service.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, intervals, nil)
}
