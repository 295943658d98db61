package impl

import (
	"testing"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(itemName, itemType string, quantity int64, lat, lon float64) *entity.DemandRequest {
	return &entity.DemandRequest{
		ID:               uuid.New(),
		ItemName:         itemName,
		ItemType:         itemType,
		Quantity:         decimal.NewFromInt(quantity),
		Unit:             "pcs",
		Latitude:         lat,
		Longitude:        lon,
		RequesterOrgID:   uuid.New(),
		RequesterOrgName: "Coastal Relief Center",
		Urgency:          entity.UrgencyHigh,
		Status:           entity.RequestStatusRequested,
	}
}

func newTestUnit(itemName, itemType string, quantity int64, lat, lon float64) *entity.SupplyUnit {
	return &entity.SupplyUnit{
		ID:           uuid.New(),
		ItemName:     itemName,
		ItemType:     itemType,
		Quantity:     decimal.NewFromInt(quantity),
		Unit:         "pcs",
		Latitude:     lat,
		Longitude:    lon,
		OwnerOrgID:   uuid.New(),
		OwnerOrgName: "Inland Depot",
		Status:       entity.SupplyStatusAvailable,
		Version:      3,
	}
}

func TestRankCompatibleSupply_FiltersAndRanksByDistance(t *testing.T) {
	request := newTestRequest("Water", "Liquid", 100, 23.8103, 90.4125)

	far := newTestUnit("water", "liquid", 50, 22.3569, 91.7832)
	near := newTestUnit("WATER", "LIQUID", 30, 23.9, 90.5)
	wrongName := newTestUnit("Rice", "Food", 500, 23.8, 90.4)
	wrongType := newTestUnit("Water", "Bottled", 40, 23.8, 90.4)
	depleted := newTestUnit("Water", "Liquid", 0, 23.8, 90.4)
	withdrawn := newTestUnit("Water", "Liquid", 60, 23.8, 90.4)
	withdrawn.Deleted = true

	ranked := rankCompatibleSupply(request, []*entity.SupplyUnit{far, near, wrongName, wrongType, depleted, withdrawn})

	require.Len(t, ranked, 2)
	assert.Equal(t, near.ID, ranked[0].unit.ID)
	assert.Equal(t, far.ID, ranked[1].unit.ID)
	assert.Less(t, ranked[0].distanceMeters, ranked[1].distanceMeters)
}

func TestRankCompatibleSupply_EqualDistanceBreaksTieOnID(t *testing.T) {
	request := newTestRequest("Blanket", "Bedding", 10, 23.8103, 90.4125)

	a := newTestUnit("Blanket", "Bedding", 5, 24.0, 90.6)
	b := newTestUnit("Blanket", "Bedding", 5, 24.0, 90.6)

	ranked := rankCompatibleSupply(request, []*entity.SupplyUnit{a, b})
	require.Len(t, ranked, 2)
	assert.Less(t, ranked[0].unit.ID.String(), ranked[1].unit.ID.String())

	// Same snapshot in reverse order produces the same ranking.
	reversed := rankCompatibleSupply(request, []*entity.SupplyUnit{b, a})
	require.Len(t, reversed, 2)
	assert.Equal(t, ranked[0].unit.ID, reversed[0].unit.ID)
	assert.Equal(t, ranked[1].unit.ID, reversed[1].unit.ID)
}

func TestRankCompatibleSupply_EmptyPool(t *testing.T) {
	request := newTestRequest("Water", "Liquid", 100, 23.8, 90.4)

	ranked := rankCompatibleSupply(request, nil)
	assert.Empty(t, ranked)
}
