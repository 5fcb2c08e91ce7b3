package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openrota/rota-api/internal/models"
	"github.com/openrota/rota-api/internal/service"
	"github.com/openrota/rota-api/pkg/response"
)

type rosterReader interface {
	ListByDate(ctx context.Context, date time.Time) ([]models.AssignmentDetail, error)
	ListUnassigned(ctx context.Context, date time.Time) ([]int64, error)
	Export(ctx context.Context, date time.Time, format string) ([]byte, string, error)
}

// RosterHandler serves roster read views and exports.
type RosterHandler struct {
	service rosterReader
}

// NewRosterHandler constructs the handler.
func NewRosterHandler(svc *service.RosterService) *RosterHandler {
	return &RosterHandler{service: svc}
}

// GetByDate godoc
// @Summary Get the roster for one date
// @Tags Roster
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /roster/{date} [get]
func (h *RosterHandler) GetByDate(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	details, err := h.service.ListByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}

// Unassigned godoc
// @Summary List available employees without an assignment on a date
// @Tags Roster
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /roster/{date}/unassigned [get]
func (h *RosterHandler) Unassigned(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	ids, err := h.service.ListUnassigned(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ids, nil)
}

// Export godoc
// @Summary Export the roster for one date as CSV or PDF
// @Tags Roster
// @Produce text/csv
// @Produce application/pdf
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param format query string false "Export format" Enums(csv, pdf) default(csv)
// @Success 200 {file} file
// @Router /roster/{date}/export [get]
func (h *RosterHandler) Export(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.service.Export(c.Request.Context(), date, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("roster-%s.%s", date.Format(models.DateFormat), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
