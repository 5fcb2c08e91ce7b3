package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openrota/rota-api/internal/dto"
	"github.com/openrota/rota-api/internal/service"
	"github.com/openrota/rota-api/pkg/response"
)

type availabilityManager interface {
	Declare(ctx context.Context, employeeID int64, date time.Time) error
	Withdraw(ctx context.Context, employeeID int64, date time.Time) error
	ListAvailable(ctx context.Context, date time.Time) ([]int64, error)
}

// AvailabilityHandler exposes availability facts.
type AvailabilityHandler struct {
	service availabilityManager
}

// NewAvailabilityHandler constructs the handler.
func NewAvailabilityHandler(svc *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: svc}
}

// Declare godoc
// @Summary Declare willingness to work a date
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body dto.AvailabilityRequest true "Availability payload"
// @Success 204
// @Router /availability [post]
func (h *AvailabilityHandler) Declare(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Declare(c.Request.Context(), req.EmployeeID, date); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Withdraw godoc
// @Summary Withdraw a declared availability
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body dto.AvailabilityRequest true "Availability payload"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /availability [delete]
func (h *AvailabilityHandler) Withdraw(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Withdraw(c.Request.Context(), req.EmployeeID, date); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListAvailable godoc
// @Summary List employees available on a date
// @Tags Availability
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /availability/{date} [get]
func (h *AvailabilityHandler) ListAvailable(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	ids, err := h.service.ListAvailable(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ids, nil)
}
