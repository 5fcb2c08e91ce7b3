package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openrota/rota-api/internal/dto"
	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/internal/service"
	appErrors "github.com/openrota/rota-api/pkg/errors"
	"github.com/openrota/rota-api/pkg/response"
)

type swapWorkflow interface {
	Create(ctx context.Context, fromEmployeeID, toEmployeeID int64, date time.Time) (*models.SwapRequest, error)
	GetByID(ctx context.Context, id string) (*models.SwapRequest, error)
	List(ctx context.Context, status models.SwapStatus) ([]models.SwapRequest, error)
	Decide(ctx context.Context, id string, outcome models.SwapOutcome) (*models.SwapRequest, error)
}

// SwapHandler exposes the swap request workflow.
type SwapHandler struct {
	service swapWorkflow
}

// NewSwapHandler constructs the handler.
func NewSwapHandler(svc *service.SwapService) *SwapHandler {
	return &SwapHandler{service: svc}
}

// Create godoc
// @Summary Propose a shift exchange between two employees
// @Tags Swaps
// @Accept json
// @Produce json
// @Param payload body dto.CreateSwapRequest true "Swap request payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /swaps [post]
func (h *SwapHandler) Create(c *gin.Context) {
	var req dto.CreateSwapRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	// Non-admin callers may only propose swaps out of their own slot.
	if claims := claimsFromContext(c); claims != nil && claims.Role != models.RoleAdmin && claims.EmployeeID != req.FromEmployeeID {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "swap requests must originate from your own assignment"))
		return
	}
	request, err := h.service.Create(c.Request.Context(), req.FromEmployeeID, req.ToEmployeeID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// List godoc
// @Summary List swap requests
// @Tags Swaps
// @Produce json
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} response.Envelope
// @Router /swaps [get]
func (h *SwapHandler) List(c *gin.Context) {
	status := models.SwapStatus(c.Query("status"))
	requests, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, nil)
}

// Get godoc
// @Summary Get one swap request
// @Tags Swaps
// @Produce json
// @Param id path string true "Swap request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /swaps/{id} [get]
func (h *SwapHandler) Get(c *gin.Context) {
	request, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// Decide godoc
// @Summary Approve or reject a pending swap request
// @Description Approval exchanges both employees' assignments atomically. A blocked exchange leaves the request pending.
// @Tags Swaps
// @Accept json
// @Produce json
// @Param id path string true "Swap request ID"
// @Param payload body dto.DecideSwapRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /swaps/{id}/decision [post]
func (h *SwapHandler) Decide(c *gin.Context) {
	var req dto.DecideSwapRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	request, err := h.service.Decide(c.Request.Context(), c.Param("id"), models.SwapOutcome(req.Outcome))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}
