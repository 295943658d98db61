package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"relief/internal/domain/entity"
	mockUsecase "relief/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSupplyHandler_ListCompatible(t *testing.T) {
	uc := mockUsecase.NewMockSupplyUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewSupplyHandler(uc, logger)

	units := []*entity.SupplyUnit{{
		ID:       uuid.New(),
		ItemName: "Water",
		ItemType: "Liquid",
		Quantity: decimal.NewFromInt(40),
		Status:   entity.SupplyStatusAvailable,
	}}
	uc.EXPECT().ListCompatible(mock.Anything, "Water", "Liquid").Return(units, nil)

	c, rec := newJSONContext(http.MethodGet, "/supply?item_name=Water&item_type=Liquid", "")

	require.NoError(t, handler.ListCompatible(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"item_name":"Water"`)
}

func TestSupplyHandler_ListCompatible_MissingParams(t *testing.T) {
	uc := mockUsecase.NewMockSupplyUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewSupplyHandler(uc, logger)

	c, rec := newJSONContext(http.MethodGet, "/supply?item_name=Water", "")

	require.NoError(t, handler.ListCompatible(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSupplyHandler_Withdraw(t *testing.T) {
	uc := mockUsecase.NewMockSupplyUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewSupplyHandler(uc, logger)

	unitID := uuid.New()
	actorID := uuid.New()
	uc.EXPECT().WithdrawSupply(mock.Anything, unitID, actorID).Return(nil)

	body := `{"actor_id": "` + actorID.String() + `"}`
	c, rec := newJSONContext(http.MethodDelete, "/supply/"+unitID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(unitID.String())

	require.NoError(t, handler.Withdraw(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSupplyHandler_AdjustQuantity(t *testing.T) {
	uc := mockUsecase.NewMockSupplyUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewSupplyHandler(uc, logger)

	unitID := uuid.New()
	actorID := uuid.New()
	updated := &entity.SupplyUnit{
		ID:       unitID,
		Quantity: decimal.NewFromInt(80),
		Status:   entity.SupplyStatusAvailable,
	}
	uc.EXPECT().
		AdjustQuantity(mock.Anything, unitID, actorID, mock.AnythingOfType("decimal.Decimal"), "recount").
		Return(updated, nil)

	body := `{"quantity": "80", "actor_id": "` + actorID.String() + `", "remark": "recount"}`
	c, rec := newJSONContext(http.MethodPatch, "/supply/"+unitID.String()+"/quantity", body)
	c.SetParamNames("id")
	c.SetParamValues(unitID.String())

	require.NoError(t, handler.AdjustQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":"80"`)
}
