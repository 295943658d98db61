package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationStatus summarizes how much of a requested amount was actually
// applied. The dashboard renders the three cases differently, so the engine
// reports them explicitly instead of leaving callers to compare amounts.
type AllocationStatus string

const (
	// AllocationFullyApplied means the full requested amount was deducted.
	AllocationFullyApplied AllocationStatus = "fully_allocated"
	// AllocationPartiallyApplied means some but not all of the requested amount was deducted.
	AllocationPartiallyApplied AllocationStatus = "partially_allocated"
	// AllocationNothingApplied means no supply was deducted at all.
	AllocationNothingApplied AllocationStatus = "nothing_allocated"
)

// DeriveAllocationStatus classifies an applied amount against the requested one.
func DeriveAllocationStatus(requested, applied decimal.Decimal) AllocationStatus {
	switch {
	case !applied.IsPositive():
		return AllocationNothingApplied
	case applied.GreaterThanOrEqual(requested):
		return AllocationFullyApplied
	default:
		return AllocationPartiallyApplied
	}
}

// AllocationRecord is the persisted summary of one keyed allocation call. The
// idempotency key is unique, so a retried call finds the record and replays its
// outcome instead of deducting inventory a second time.
type AllocationRecord struct {
	ID               uuid.UUID        `json:"id"`
	IdempotencyKey   string           `json:"idempotency_key"`
	RequestID        uuid.UUID        `json:"request_id"`
	ActorID          uuid.UUID        `json:"actor_id"`
	RequestedAmount  decimal.Decimal  `json:"requested_amount"`
	PlannedAmount    decimal.Decimal  `json:"planned_amount"`
	AppliedAmount    decimal.Decimal  `json:"applied_amount"`
	RequestRemainder decimal.Decimal  `json:"request_remainder"`
	RequestFulfilled bool             `json:"request_fulfilled"`
	Status           AllocationStatus `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}
