package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/internal/service"
	"github.com/openrota/rota-api/pkg/response"
)

type auditReader interface {
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEvent, error)
}

// AuditHandler serves the assignment audit trail.
type AuditHandler struct {
	service auditReader
}

// NewAuditHandler constructs the handler.
func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{service: svc}
}

// List godoc
// @Summary List audit events in recording order
// @Tags Audit
// @Produce json
// @Param employee_id query int false "Filter by employee"
// @Param action query string false "Filter by action" Enums(Assigned, Removed)
// @Param from query string false "Recorded-at lower bound (RFC3339)"
// @Param to query string false "Recorded-at upper bound (RFC3339)"
// @Param limit query int false "Maximum events (default 100, max 500)"
// @Success 200 {object} response.Envelope
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	filter := models.AuditFilter{
		Action: c.Query("action"),
	}
	if raw := c.Query("employee_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.EmployeeID = id
		}
	}
	if raw := c.Query("from"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.From = ts
		}
	}
	if raw := c.Query("to"); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.To = ts
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}

	events, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}
