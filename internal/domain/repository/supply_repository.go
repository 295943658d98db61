// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for supply persistence.
var (
	// ErrSupplyNotFound is returned when a supply unit does not exist or is soft-deleted.
	ErrSupplyNotFound = errors.New("supply unit not found")
	// ErrSupplyConflict is returned when a conditional decrement loses the
	// version/quantity precondition to a concurrent writer.
	ErrSupplyConflict = errors.New("supply unit was modified concurrently")
)

// SupplyRepository defines the interface for supply-unit database operations.
type SupplyRepository interface {
	// FindByID retrieves a supply unit by its unique ID, including soft-deleted units.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplyUnit, error)

	// ListCompatible retrieves every non-deleted supply unit with a positive
	// quantity stocking the given item. Name and type match case-insensitively.
	ListCompatible(ctx context.Context, itemName, itemType string) ([]*entity.SupplyUnit, error)

	// ConditionalDecrement deducts amount from the unit's quantity only if the
	// unit still carries the expected version and at least that quantity. The
	// write bumps the version and derives the status (depleted iff the new
	// quantity is zero). Returns the updated unit on success, ErrSupplyConflict
	// when the precondition fails, ErrSupplyNotFound when the unit is gone.
	ConditionalDecrement(ctx context.Context, id uuid.UUID, amount decimal.Decimal, expectedVersion int64) (*entity.SupplyUnit, error)

	// SetQuantity overwrites the unit's quantity and derived status, bumping the
	// version. Used by manual adjustments, not by allocation.
	SetQuantity(ctx context.Context, id uuid.UUID, quantity decimal.Decimal) (*entity.SupplyUnit, error)

	// SoftDelete marks the unit withdrawn. The row is kept for the audit trail.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
