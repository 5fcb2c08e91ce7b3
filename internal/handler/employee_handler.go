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

type employeeManager interface {
	Create(ctx context.Context, employee *models.Employee, password string) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
}

// EmployeeHandler exposes employee master data.
type EmployeeHandler struct {
	service employeeManager
}

// NewEmployeeHandler constructs the handler.
func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: svc}
}

// Create godoc
// @Summary Register an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param payload body dto.CreateEmployeeRequest true "Employee payload"
// @Success 201 {object} response.Envelope
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	employee := &models.Employee{
		FullName:         req.FullName,
		Email:            req.Email,
		Role:             req.Role,
		PreferredShiftID: req.PreferredShiftID,
	}
	if err := h.service.Create(c.Request.Context(), employee, req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, employee)
}

// Get godoc
// @Summary Get one employee
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "employee id must be numeric"))
		return
	}
	employee, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employee, nil)
}

// List godoc
// @Summary List employees
// @Tags Employees
// @Produce json
// @Param status query string false "Filter by employment status" Enums(ACTIVE, INACTIVE)
// @Success 200 {object} response.Envelope
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	filter := models.EmployeeFilter{Status: c.Query("status")}
	employees, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employees, nil)
}
