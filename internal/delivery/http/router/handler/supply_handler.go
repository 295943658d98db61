package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"relief/internal/delivery/http/response"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SupplyHandler holds dependencies for supply-related handlers.
type SupplyHandler struct {
	uc     usecase.SupplyUsecase
	logger *slog.Logger
}

// NewSupplyHandler is the constructor for SupplyHandler, injected by Fx.
func NewSupplyHandler(uc usecase.SupplyUsecase, logger *slog.Logger) *SupplyHandler {
	return &SupplyHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCompatible handles the unranked compatible-supply listing.
func (h *SupplyHandler) ListCompatible(c echo.Context) error {
	itemName := c.QueryParam("item_name")
	itemType := c.QueryParam("item_type")
	if itemName == "" || itemType == "" {
		return response.BindingError(c, "INVALID_INPUT", "item_name and item_type are required")
	}

	units, err := h.uc.ListCompatible(c.Request().Context(), itemName, itemType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, units, "")
}

// History handles the audit trail listing of one supply unit.
func (h *SupplyHandler) History(c echo.Context) error {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_UNIT_ID", "Unit ID must be a UUID")
	}

	limit, offset := paging(c)
	entries, err := h.uc.UnitHistory(c.Request().Context(), unitID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

type withdrawRequest struct {
	ActorID uuid.UUID `json:"actor_id"`
}

// Withdraw handles a donor withdrawing a supply unit.
func (h *SupplyHandler) Withdraw(c echo.Context) error {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_UNIT_ID", "Unit ID must be a UUID")
	}

	var input withdrawRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid withdrawal input")
	}
	if input.ActorID == uuid.Nil {
		return response.BindingError(c, "INVALID_INPUT", "actor_id is required")
	}

	if err := h.uc.WithdrawSupply(c.Request().Context(), unitID, input.ActorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": unitID.String()}, "Supply unit withdrawn")
}

type adjustQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	ActorID  uuid.UUID       `json:"actor_id"`
	Remark   string          `json:"remark"`
}

// AdjustQuantity handles a donor correcting a unit's stock level.
func (h *SupplyHandler) AdjustQuantity(c echo.Context) error {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_UNIT_ID", "Unit ID must be a UUID")
	}

	var input adjustQuantityRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if input.ActorID == uuid.Nil {
		return response.BindingError(c, "INVALID_INPUT", "actor_id is required")
	}

	updated, err := h.uc.AdjustQuantity(c.Request().Context(), unitID, input.ActorID, input.Quantity, input.Remark)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Supply quantity adjusted")
}

// paging reads limit/offset query parameters with sane fallbacks.
func paging(c echo.Context) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}
