package postgres

import (
	"context"
	"time"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	"relief/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// FindByID retrieves a demand request by its unique ID. A fulfilled request was
// removed, so not-found also covers "already satisfied".
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DemandRequest, error) {
	var requestM model.DemandRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find demand request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// UpdateRemainder sets the outstanding quantity and status after an allocation
// reduced the request.
func (repo *requestRepository) UpdateRemainder(ctx context.Context, id uuid.UUID, remainder decimal.Decimal, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DemandRequestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   remainder,
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update demand request remainder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// Delete removes a fulfilled request.
func (repo *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DemandRequestModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete demand request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// toRequestDomain converts a GORM model to a domain entity.
func toRequestDomain(data *model.DemandRequestModel) *entity.DemandRequest {
	return &entity.DemandRequest{
		ID:               data.ID,
		ItemName:         data.ItemName,
		ItemType:         data.ItemType,
		Quantity:         data.Quantity,
		Unit:             data.Unit,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		RequesterOrgID:   data.RequesterOrgID,
		RequesterOrgName: data.RequesterOrgName,
		Urgency:          entity.Urgency(data.Urgency),
		DisasterType:     data.DisasterType,
		Status:           entity.RequestStatus(data.Status),
		UpdatedAt:        data.UpdatedAt,
	}
}
