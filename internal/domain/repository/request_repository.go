package repository

import (
	"context"
	"errors"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrRequestNotFound is returned when a demand request does not exist, which
// includes requests already fulfilled and therefore removed.
var ErrRequestNotFound = errors.New("demand request not found")

// RequestRepository defines the interface for demand-request database operations.
type RequestRepository interface {
	// FindByID retrieves a demand request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DemandRequest, error)

	// UpdateRemainder sets the outstanding quantity and status of a request.
	// Returns ErrRequestNotFound when the row vanished under a concurrent fulfillment.
	UpdateRemainder(ctx context.Context, id uuid.UUID, remainder decimal.Decimal, status entity.RequestStatus) error

	// Delete removes a fulfilled request. Fulfilled requests are never kept at
	// zero, removal is their terminal state.
	Delete(ctx context.Context, id uuid.UUID) error
}
