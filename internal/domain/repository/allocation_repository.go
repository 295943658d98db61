package repository

import (
	"context"
	"errors"

	"relief/internal/domain/entity"
)

// Domain-specific errors for allocation-record persistence.
var (
	// ErrAllocationRecordNotFound is returned when no record carries the given idempotency key.
	ErrAllocationRecordNotFound = errors.New("allocation record not found")
	// ErrDuplicateAllocationKey is returned when another record already holds the
	// idempotency key, meaning a concurrent call with the same key won the race.
	ErrDuplicateAllocationKey = errors.New("allocation record with this idempotency key already exists")
)

// AllocationRepository defines the interface for idempotency-record persistence.
type AllocationRepository interface {
	// Create persists the outcome summary of a keyed allocation call.
	Create(ctx context.Context, record *entity.AllocationRecord) error

	// FindByIdempotencyKey retrieves the record written by a previous call with the same key.
	FindByIdempotencyKey(ctx context.Context, key string) (*entity.AllocationRecord, error)
}
