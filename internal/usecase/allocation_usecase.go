// Package usecase defines the application's use case interfaces and their DTOs.
package usecase

import (
	"context"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocateInput carries one allocation order from the operator.
type AllocateInput struct {
	RequestID uuid.UUID
	Amount    decimal.Decimal
	ActorID   uuid.UUID
	// IdempotencyKey, when set, makes a retried call replay the stored outcome
	// instead of deducting inventory a second time.
	IdempotencyKey string
}

// PlanEntry is one proposed draw: take Amount from the supply unit, which sits
// DistanceMeters away from the point of need. Ephemeral, never persisted.
type PlanEntry struct {
	UnitID         uuid.UUID       `json:"unit_id"`
	OwnerOrgID     uuid.UUID       `json:"owner_org_id"`
	OwnerOrgName   string          `json:"owner_org_name"`
	Amount         decimal.Decimal `json:"amount"`
	UnitQuantity   decimal.Decimal `json:"unit_quantity"` // Snapshot quantity the draw was planned against.
	DistanceMeters float64         `json:"distance_meters"`
}

// AppliedEntry is one draw that survived the conditional write.
type AppliedEntry struct {
	UnitID            uuid.UUID           `json:"unit_id"`
	OwnerOrgID        uuid.UUID           `json:"owner_org_id"`
	OwnerOrgName      string              `json:"owner_org_name"`
	Amount            decimal.Decimal     `json:"amount"`
	ResultingQuantity decimal.Decimal     `json:"resulting_quantity"`
	ResultingStatus   entity.SupplyStatus `json:"resulting_status"`
}

// FailedEntry is one draw that lost its conditional write. Its amount is not
// redistributed within the same call, it simply reduces the applied total.
type FailedEntry struct {
	UnitID uuid.UUID       `json:"unit_id"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// DonorShare aggregates the applied draws per donor organization.
type DonorShare struct {
	OrgID   uuid.UUID       `json:"org_id"`
	OrgName string          `json:"org_name"`
	Amount  decimal.Decimal `json:"amount"`
}

// AllocationOutcome reports what one allocate call actually did. Reduced applied
// amounts are legitimate reported outcomes, never errors: concurrent consumption
// and insufficient supply are expected operating conditions.
type AllocationOutcome struct {
	Status           entity.AllocationStatus `json:"status"`
	PlannedAmount    decimal.Decimal         `json:"planned_amount"`
	AppliedAmount    decimal.Decimal         `json:"applied_amount"`
	RequestRemainder decimal.Decimal         `json:"request_remainder"`
	RequestFulfilled bool                    `json:"request_fulfilled"`
	AppliedEntries   []AppliedEntry          `json:"applied_entries"`
	FailedEntries    []FailedEntry           `json:"failed_entries,omitempty"`
	PerDonor         []DonorShare            `json:"per_donor"`
	Warnings         []string                `json:"warnings,omitempty"`
	// Replayed marks an outcome served from the idempotency record of an
	// earlier call with the same key.
	Replayed bool `json:"replayed,omitempty"`
}

// AllocationPreview is the ranked plan for an amount, computed without mutating
// anything. The snapshot may be stale by the time the operator confirms.
type AllocationPreview struct {
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	PlannedAmount   decimal.Decimal `json:"planned_amount"`
	TotalCompatible decimal.Decimal `json:"total_compatible"`
	Entries         []PlanEntry     `json:"entries"`
}

// AllocationUsecase defines the interface for the resource allocation engine.
type AllocationUsecase interface {
	// Allocate draws the given amount for a demand request from the nearest
	// compatible supply, updates inventory and the request, writes the audit
	// trail, and notifies every affected organization.
	Allocate(ctx context.Context, input AllocateInput) (*AllocationOutcome, error)

	// PreviewAllocation returns the plan Allocate would start from, without side effects.
	PreviewAllocation(ctx context.Context, requestID uuid.UUID, amount decimal.Decimal) (*AllocationPreview, error)
}
