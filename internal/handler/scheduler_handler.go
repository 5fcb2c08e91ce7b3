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

type autoAssigner interface {
	AutoAssign(ctx context.Context, date time.Time, shiftID int64) (*dto.AutoAssignResult, error)
}

// SchedulerHandler exposes the batch auto-assignment endpoint.
type SchedulerHandler struct {
	service autoAssigner
}

// NewSchedulerHandler constructs the handler.
func NewSchedulerHandler(svc *service.SchedulerService) *SchedulerHandler {
	return &SchedulerHandler{service: svc}
}

// AutoAssign godoc
// @Summary Assign every available employee on a date to the target shift
// @Description Candidates already assigned or on leave are reported as skipped with a reason. Re-running over the same input assigns nobody.
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param payload body dto.AutoAssignRequest true "Auto-assign payload"
// @Success 200 {object} response.Envelope
// @Router /scheduler/auto-assign [post]
func (h *SchedulerHandler) AutoAssign(c *gin.Context) {
	var req dto.AutoAssignRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.AutoAssign(c.Request.Context(), date, req.ShiftID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
