package impl

import (
	"relief/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// plannedDraw is one entry of an allocation plan: take amount from the unit.
// The unit pointer carries the snapshot version the executor's conditional
// write will be predicated on.
type plannedDraw struct {
	unit           *entity.SupplyUnit
	amount         decimal.Decimal
	distanceMeters float64
}

// buildPlan walks the ranked supply in order, drawing min(remaining, quantity)
// from each unit until the requested amount is covered or supply runs out. The
// planned total may fall short of the requested amount: partial fulfillment is
// an expected outcome, not an error. The snapshot is never mutated.
func buildPlan(ranked []rankedUnit, requested decimal.Decimal) ([]plannedDraw, decimal.Decimal) {
	var entries []plannedDraw
	remaining := requested

	for i := range ranked {
		if !remaining.IsPositive() {
			break
		}

		draw := decimal.Min(remaining, ranked[i].unit.Quantity)
		if !draw.IsPositive() {
			continue
		}

		entries = append(entries, plannedDraw{
			unit:           ranked[i].unit,
			amount:         draw,
			distanceMeters: ranked[i].distanceMeters,
		})
		remaining = remaining.Sub(draw)
	}

	return entries, requested.Sub(remaining)
}
