package postgres

import (
	"context"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	"relief/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// allocationRepository implements the repository.AllocationRepository interface.
type allocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository is the constructor for allocationRepository.
func NewAllocationRepository(db *gorm.DB) repository.AllocationRepository {
	return &allocationRepository{
		db: db,
	}
}

// Create persists the outcome summary of a keyed allocation call. The unique
// index on the idempotency key is what arbitrates concurrent retries.
func (repo *allocationRepository) Create(ctx context.Context, record *entity.AllocationRecord) error {
	recordM := fromAllocationDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAllocationKey
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create allocation record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindByIdempotencyKey retrieves the record written by a previous keyed call.
func (repo *allocationRepository) FindByIdempotencyKey(ctx context.Context, key string) (*entity.AllocationRecord, error) {
	var recordM model.AllocationRecordModel

	if err := repo.db.WithContext(ctx).
		Where("idempotency_key = ?", key).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAllocationRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find allocation record by idempotency key")
	}

	return toAllocationDomain(&recordM), nil
}

// toAllocationDomain converts a GORM model to a domain entity.
func toAllocationDomain(data *model.AllocationRecordModel) *entity.AllocationRecord {
	return &entity.AllocationRecord{
		ID:               data.ID,
		IdempotencyKey:   data.IdempotencyKey,
		RequestID:        data.RequestID,
		ActorID:          data.ActorID,
		RequestedAmount:  data.RequestedAmount,
		PlannedAmount:    data.PlannedAmount,
		AppliedAmount:    data.AppliedAmount,
		RequestRemainder: data.RequestRemainder,
		RequestFulfilled: data.RequestFulfilled,
		Status:           entity.AllocationStatus(data.Status),
		CreatedAt:        data.CreatedAt,
	}
}

// fromAllocationDomain converts a domain entity to a GORM model.
func fromAllocationDomain(data *entity.AllocationRecord) *model.AllocationRecordModel {
	return &model.AllocationRecordModel{
		ID:               data.ID,
		IdempotencyKey:   data.IdempotencyKey,
		RequestID:        data.RequestID,
		ActorID:          data.ActorID,
		RequestedAmount:  data.RequestedAmount,
		PlannedAmount:    data.PlannedAmount,
		AppliedAmount:    data.AppliedAmount,
		RequestRemainder: data.RequestRemainder,
		RequestFulfilled: data.RequestFulfilled,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
	}
}
