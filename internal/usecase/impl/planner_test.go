package impl

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFixture(quantities ...int64) []rankedUnit {
	ranked := make([]rankedUnit, 0, len(quantities))
	for i, q := range quantities {
		ranked = append(ranked, rankedUnit{
			unit:           newTestUnit("Water", "Liquid", q, 23.8, 90.4),
			distanceMeters: float64(i) * 1000,
		})
	}

	return ranked
}

func TestBuildPlan_StopsOnceCovered(t *testing.T) {
	ranked := rankedFixture(30, 50, 100)

	plan, planned := buildPlan(ranked, decimal.NewFromInt(70))

	require.Len(t, plan, 2)
	assert.True(t, plan[0].amount.Equal(decimal.NewFromInt(30)), "nearest unit drained first")
	assert.True(t, plan[1].amount.Equal(decimal.NewFromInt(40)), "second unit covers the rest")
	assert.True(t, planned.Equal(decimal.NewFromInt(70)))
}

func TestBuildPlan_ShortfallIsNotAnError(t *testing.T) {
	ranked := rankedFixture(30, 20)

	plan, planned := buildPlan(ranked, decimal.NewFromInt(100))

	require.Len(t, plan, 2)
	assert.True(t, planned.Equal(decimal.NewFromInt(50)))
}

func TestBuildPlan_FractionalQuantities(t *testing.T) {
	half := decimal.RequireFromString("12.5")
	ranked := []rankedUnit{{
		unit:           newTestUnit("Fuel", "Diesel", 0, 23.8, 90.4),
		distanceMeters: 500,
	}}
	ranked[0].unit.Quantity = decimal.RequireFromString("40.25")

	plan, planned := buildPlan(ranked, half)

	require.Len(t, plan, 1)
	assert.True(t, plan[0].amount.Equal(half))
	assert.True(t, planned.Equal(half))
}

func TestBuildPlan_EmptySupply(t *testing.T) {
	plan, planned := buildPlan(nil, decimal.NewFromInt(10))

	assert.Empty(t, plan)
	assert.True(t, planned.IsZero())
}

func TestBuildPlan_PlanConservesRequestedAmount(t *testing.T) {
	ranked := rankedFixture(10, 10, 10, 10)

	plan, planned := buildPlan(ranked, decimal.NewFromInt(35))

	total := decimal.Zero
	for _, draw := range plan {
		total = total.Add(draw.amount)
	}
	assert.True(t, total.Equal(planned))
	assert.True(t, planned.Equal(decimal.NewFromInt(35)))
}
