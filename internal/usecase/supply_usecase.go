package usecase

import (
	"context"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplyUsecase defines the interface for donor-side inventory management that
// happens outside of allocation.
type SupplyUsecase interface {
	// ListCompatible retrieves allocatable supply for an item, unranked.
	ListCompatible(ctx context.Context, itemName, itemType string) ([]*entity.SupplyUnit, error)

	// UnitHistory retrieves the audit trail of one supply unit, newest first.
	UnitHistory(ctx context.Context, unitID uuid.UUID, limit, offset int) ([]*entity.HistoryEntry, error)

	// WithdrawSupply soft-deletes a unit on behalf of its owning organization,
	// appends the delete audit entry, and broadcasts to operators. One transaction.
	WithdrawSupply(ctx context.Context, unitID, actorOrgID uuid.UUID) error

	// AdjustQuantity overwrites a unit's quantity, appends the manual-adjust
	// audit entry with the signed delta, and broadcasts to operators. One transaction.
	AdjustQuantity(ctx context.Context, unitID, actorOrgID uuid.UUID, quantity decimal.Decimal, remark string) (*entity.SupplyUnit, error)
}
