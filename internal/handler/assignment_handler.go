package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openrota/rota-api/internal/dto"
	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/internal/service"
	"github.com/openrota/rota-api/pkg/response"
)

type assignmentMutator interface {
	Assign(ctx context.Context, employeeID, shiftID int64, date time.Time) (*models.ShiftAssignment, error)
	Remove(ctx context.Context, employeeID int64, date time.Time) error
	Reassign(ctx context.Context, employeeID int64, date time.Time, newShiftID int64) (*models.ShiftAssignment, error)
}

// AssignmentHandler exposes assignment store mutations.
type AssignmentHandler struct {
	service assignmentMutator
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// Assign godoc
// @Summary Assign an employee to a shift on a date
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body dto.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /assignments [post]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	assignment, err := h.service.Assign(c.Request.Context(), req.EmployeeID, req.ShiftID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Remove godoc
// @Summary Remove an employee's assignment on a date
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body dto.RemoveAssignmentRequest true "Removal payload"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /assignments [delete]
func (h *AssignmentHandler) Remove(c *gin.Context) {
	var req dto.RemoveAssignmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Remove(c.Request.Context(), req.EmployeeID, date); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reassign godoc
// @Summary Move an employee to a different shift on the same date
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body dto.ReassignRequest true "Reassignment payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /assignments/reassign [put]
func (h *AssignmentHandler) Reassign(c *gin.Context) {
	var req dto.ReassignRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	assignment, err := h.service.Reassign(c.Request.Context(), req.EmployeeID, date, req.NewShiftID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment, nil)
}
