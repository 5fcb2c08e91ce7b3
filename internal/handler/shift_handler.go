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

type shiftManager interface {
	Create(ctx context.Context, shift *models.Shift) error
	GetByID(ctx context.Context, id int64) (*models.Shift, error)
	List(ctx context.Context) ([]models.Shift, error)
}

// ShiftHandler exposes the shift catalog.
type ShiftHandler struct {
	service shiftManager
}

// NewShiftHandler constructs the handler.
func NewShiftHandler(svc *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: svc}
}

// Create godoc
// @Summary Add a shift to the catalog
// @Tags Shifts
// @Accept json
// @Produce json
// @Param payload body dto.CreateShiftRequest true "Shift payload"
// @Success 201 {object} response.Envelope
// @Router /shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	shift := &models.Shift{Name: req.Name, StartTime: req.StartTime, EndTime: req.EndTime}
	if err := h.service.Create(c.Request.Context(), shift); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, shift)
}

// Get godoc
// @Summary Get one shift
// @Tags Shifts
// @Produce json
// @Param id path int true "Shift ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "shift id must be numeric"))
		return
	}
	shift, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, shift, nil)
}

// List godoc
// @Summary List the shift catalog
// @Tags Shifts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /shifts [get]
func (h *ShiftHandler) List(c *gin.Context) {
	shifts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, shifts, nil)
}
