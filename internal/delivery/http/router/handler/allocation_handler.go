package handler

import (
	"context"
	"log/slog"
	"net/http"

	"relief/config"
	"relief/internal/delivery/http/response"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AllocationHandler holds dependencies for allocation-related handlers.
type AllocationHandler struct {
	uc     usecase.AllocationUsecase
	logger *slog.Logger
	cfg    *config.Config
}

// NewAllocationHandler is the constructor for AllocationHandler, injected by Fx.
func NewAllocationHandler(uc usecase.AllocationUsecase, logger *slog.Logger, cfg *config.Config) *AllocationHandler {
	return &AllocationHandler{
		uc:     uc,
		logger: logger,
		cfg:    cfg,
	}
}

type allocateRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	ActorID        uuid.UUID       `json:"actor_id"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// Allocate handles the allocation order for a demand request.
func (h *AllocationHandler) Allocate(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_REQUEST_ID", "Request ID must be a UUID")
	}

	var input allocateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid allocation input")
	}
	if input.ActorID == uuid.Nil {
		return response.BindingError(c, "INVALID_INPUT", "actor_id is required")
	}

	// The whole call is bounded; draws not attempted before the deadline are
	// abandoned and reported in the outcome.
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.cfg.Allocation.OperationTimeout)
	defer cancel()

	outcome, err := h.uc.Allocate(ctx, usecase.AllocateInput{
		RequestID:      requestID,
		Amount:         input.Amount,
		ActorID:        input.ActorID,
		IdempotencyKey: input.IdempotencyKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcome, "Allocation completed")
}

// Plan handles the dry-run preview of an allocation.
func (h *AllocationHandler) Plan(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_REQUEST_ID", "Request ID must be a UUID")
	}

	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return response.BindingError(c, "INVALID_AMOUNT", "amount must be a decimal number")
	}

	preview, err := h.uc.PreviewAllocation(c.Request().Context(), requestID, amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, preview, "Allocation plan computed")
}
