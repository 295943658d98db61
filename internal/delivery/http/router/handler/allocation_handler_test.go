package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"relief/config"
	"relief/internal/domain/entity"
	mockUsecase "relief/internal/mocks/usecase"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAllocationConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Allocation = &config.AllocationConfig{OperationTimeout: 5 * time.Second}

	return cfg
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAllocationHandler_Allocate(t *testing.T) {
	uc := mockUsecase.NewMockAllocationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAllocationHandler(uc, logger, testAllocationConfig())

	requestID := uuid.New()
	actorID := uuid.New()
	outcome := &usecase.AllocationOutcome{
		Status:           entity.AllocationFullyApplied,
		PlannedAmount:    decimal.NewFromInt(40),
		AppliedAmount:    decimal.NewFromInt(40),
		RequestRemainder: decimal.Zero,
		RequestFulfilled: true,
	}
	uc.EXPECT().
		Allocate(mock.Anything, mock.AnythingOfType("usecase.AllocateInput")).
		Run(func(_ context.Context, input usecase.AllocateInput) {
			assert.Equal(t, requestID, input.RequestID)
			assert.Equal(t, actorID, input.ActorID)
			assert.True(t, input.Amount.Equal(decimal.NewFromInt(40)))
		}).
		Return(outcome, nil)

	body := `{"amount": "40", "actor_id": "` + actorID.String() + `"}`
	c, rec := newJSONContext(http.MethodPost, "/requests/"+requestID.String()+"/allocate", body)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, handler.Allocate(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"fully_allocated"`)
	assert.Contains(t, rec.Body.String(), `"request_fulfilled":true`)
}

func TestAllocationHandler_Allocate_BadRequestID(t *testing.T) {
	uc := mockUsecase.NewMockAllocationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAllocationHandler(uc, logger, testAllocationConfig())

	c, rec := newJSONContext(http.MethodPost, "/requests/not-a-uuid/allocate", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Allocate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST_ID")
}

func TestAllocationHandler_Allocate_MissingActor(t *testing.T) {
	uc := mockUsecase.NewMockAllocationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAllocationHandler(uc, logger, testAllocationConfig())

	requestID := uuid.New()
	c, rec := newJSONContext(http.MethodPost, "/requests/"+requestID.String()+"/allocate", `{"amount":"10"}`)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, handler.Allocate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAllocationHandler_Plan(t *testing.T) {
	uc := mockUsecase.NewMockAllocationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAllocationHandler(uc, logger, testAllocationConfig())

	requestID := uuid.New()
	preview := &usecase.AllocationPreview{
		RequestedAmount: decimal.NewFromInt(25),
		PlannedAmount:   decimal.NewFromInt(25),
		TotalCompatible: decimal.NewFromInt(90),
	}
	uc.EXPECT().
		PreviewAllocation(mock.Anything, requestID, mock.AnythingOfType("decimal.Decimal")).
		Return(preview, nil)

	c, rec := newJSONContext(http.MethodGet, "/requests/"+requestID.String()+"/plan?amount=25", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, handler.Plan(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_compatible":"90"`)
}

func TestAllocationHandler_Plan_BadAmount(t *testing.T) {
	uc := mockUsecase.NewMockAllocationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAllocationHandler(uc, logger, testAllocationConfig())

	requestID := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/requests/"+requestID.String()+"/plan?amount=lots", "")
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	require.NoError(t, handler.Plan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_AMOUNT")
}
