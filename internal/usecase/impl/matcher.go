// Package impl contains the use case implementations, including the allocation
// engine's matching, planning, and execution logic.
package impl

import (
	"sort"

	"relief/internal/domain/entity"
	"relief/internal/geo"
)

// rankedUnit pairs a snapshot supply unit with its distance from the point of need.
type rankedUnit struct {
	unit           *entity.SupplyUnit
	distanceMeters float64
}

// rankCompatibleSupply filters the supply pool to units stocking the request's
// item (case-insensitive on name and type), with a positive quantity and not
// withdrawn, then ranks them by distance ascending. Ties break on unit ID so an
// identical snapshot always produces an identical order. An empty result means
// "cannot allocate" and is not an error.
//
// The pool is a snapshot: nothing here is treated as ground truth at write time,
// the executor re-validates every quantity through its conditional writes.
func rankCompatibleSupply(request *entity.DemandRequest, pool []*entity.SupplyUnit) []rankedUnit {
	need := geo.Coordinate{Latitude: request.Latitude, Longitude: request.Longitude}

	ranked := make([]rankedUnit, 0, len(pool))
	for _, unit := range pool {
		if !unit.Allocatable() {
			continue
		}
		if !unit.MatchesItem(request.ItemName, request.ItemType) {
			continue
		}

		ranked = append(ranked, rankedUnit{
			unit:           unit,
			distanceMeters: geo.Distance(need, geo.Coordinate{Latitude: unit.Latitude, Longitude: unit.Longitude}),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distanceMeters != ranked[j].distanceMeters {
			return ranked[i].distanceMeters < ranked[j].distanceMeters
		}

		return ranked[i].unit.ID.String() < ranked[j].unit.ID.String()
	})

	return ranked
}
