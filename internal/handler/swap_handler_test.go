package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrota/rota-api/internal/middleware"
	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type swapWorkflowStub struct {
	createErr error
	decideErr error
	request   *models.SwapRequest
}

func (s swapWorkflowStub) Create(_ context.Context, from, to int64, date time.Time) (*models.SwapRequest, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.SwapRequest{ID: "swap-1", FromEmployeeID: from, ToEmployeeID: to, WorkDate: date, Status: models.SwapStatusPending}, nil
}

func (s swapWorkflowStub) GetByID(context.Context, string) (*models.SwapRequest, error) {
	return s.request, nil
}

func (s swapWorkflowStub) List(context.Context, models.SwapStatus) ([]models.SwapRequest, error) {
	return nil, nil
}

func (s swapWorkflowStub) Decide(context.Context, string, models.SwapOutcome) (*models.SwapRequest, error) {
	if s.decideErr != nil {
		return nil, s.decideErr
	}
	return s.request, nil
}

func performRequest(t *testing.T, handler gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Handle(method, "/swaps/:id/decision", handler)
	router.Handle(method, "/swaps", handler)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error *appErrors.Error `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	return envelope.Error.Code
}

func TestSwapHandlerCreateInvalidSwapMapsTo400(t *testing.T) {
	h := &SwapHandler{service: swapWorkflowStub{createErr: appErrors.Clone(appErrors.ErrInvalidSwap, "")}}

	recorder := performRequest(t, h.Create, http.MethodPost, "/swaps",
		`{"from_employee_id":3,"to_employee_id":3,"date":"2026-03-02"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, appErrors.ErrInvalidSwap.Code, decodeError(t, recorder))
}

func TestSwapHandlerDecideNoShiftMapsTo412(t *testing.T) {
	h := &SwapHandler{service: swapWorkflowStub{decideErr: appErrors.Clone(appErrors.ErrNoShiftToSwap, "")}}

	recorder := performRequest(t, h.Decide, http.MethodPost, "/swaps/swap-1/decision",
		`{"outcome":"APPROVE"}`)
	assert.Equal(t, http.StatusPreconditionFailed, recorder.Code)
	assert.Equal(t, appErrors.ErrNoShiftToSwap.Code, decodeError(t, recorder))
}

func TestSwapHandlerDecideAlreadyDecidedMapsTo409(t *testing.T) {
	h := &SwapHandler{service: swapWorkflowStub{decideErr: appErrors.Clone(appErrors.ErrAlreadyDecided, "")}}

	recorder := performRequest(t, h.Decide, http.MethodPost, "/swaps/swap-1/decision",
		`{"outcome":"REJECT"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, appErrors.ErrAlreadyDecided.Code, decodeError(t, recorder))
}

func TestSwapHandlerCreateEnforcesOwnership(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &SwapHandler{service: swapWorkflowStub{}}
	router := gin.New()
	router.POST("/swaps", func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, &models.JWTClaims{EmployeeID: 9, Role: models.RoleEmployee})
	}, h.Create)

	req := httptest.NewRequest(http.MethodPost, "/swaps",
		strings.NewReader(`{"from_employee_id":1,"to_employee_id":2,"date":"2026-03-02"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, appErrors.ErrForbidden.Code, decodeError(t, recorder))
}

func TestSwapHandlerCreateRejectsBadDate(t *testing.T) {
	h := &SwapHandler{service: swapWorkflowStub{}}

	recorder := performRequest(t, h.Create, http.MethodPost, "/swaps",
		`{"from_employee_id":1,"to_employee_id":2,"date":"02-03-2026"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, appErrors.ErrValidation.Code, decodeError(t, recorder))
}
