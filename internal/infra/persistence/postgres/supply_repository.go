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

// supplyRepository implements the repository.SupplyRepository interface.
type supplyRepository struct {
	db *gorm.DB
}

// NewSupplyRepository is the constructor for supplyRepository.
func NewSupplyRepository(db *gorm.DB) repository.SupplyRepository {
	return &supplyRepository{
		db: db,
	}
}

// FindByID retrieves a supply unit by its unique ID, including soft-deleted units
// so the audit trail of a withdrawn unit stays reachable.
func (repo *supplyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupplyUnit, error) {
	var supplyM model.SupplyUnitModel

	if err := repo.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		First(&supplyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplyNotFound
		}

		return nil, errors.Wrap(err, "failed to find supply unit by ID")
	}

	return toSupplyDomain(&supplyM), nil
}

// ListCompatible retrieves every allocatable unit stocking the given item.
// Name and type match case-insensitively, mirroring how the dashboard's donors
// free-type item names.
func (repo *supplyRepository) ListCompatible(ctx context.Context, itemName, itemType string) ([]*entity.SupplyUnit, error) {
	var supplyModels []*model.SupplyUnitModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(item_name) = LOWER(?)", itemName).
		Where("LOWER(item_type) = LOWER(?)", itemType).
		Where("quantity > 0").
		Find(&supplyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list compatible supply")
	}

	units := make([]*entity.SupplyUnit, 0, len(supplyModels))
	for _, supplyM := range supplyModels {
		units = append(units, toSupplyDomain(supplyM))
	}

	return units, nil
}

// ConditionalDecrement deducts amount from the unit only while the version and
// quantity precondition still holds. The precondition is re-checked inside the
// UPDATE's WHERE clause, so two racing decrements can never drive the quantity
// negative regardless of how stale the caller's snapshot was.
func (repo *supplyRepository) ConditionalDecrement(ctx context.Context, id uuid.UUID, amount decimal.Decimal, expectedVersion int64) (*entity.SupplyUnit, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplyUnitModel{}).
		Where("id = ? AND version = ? AND quantity >= ?", id, expectedVersion, amount).
		Updates(map[string]any{
			"quantity": gorm.Expr("quantity - ?", amount),
			"status": gorm.Expr(
				"CASE WHEN quantity - ? = 0 THEN ? ELSE ? END",
				amount, string(entity.SupplyStatusDepleted), string(entity.SupplyStatusAvailable),
			),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement supply unit")
	}

	if result.RowsAffected == 0 {
		// Distinguish a lost race from a vanished unit.
		var exists int64
		if err := repo.db.WithContext(ctx).
			Model(&model.SupplyUnitModel{}).
			Where("id = ?", id).
			Count(&exists).Error; err != nil {
			return nil, errors.Wrap(err, "failed to check supply unit existence")
		}
		if exists == 0 {
			return nil, repository.ErrSupplyNotFound
		}

		return nil, repository.ErrSupplyConflict
	}

	return repo.reload(ctx, id)
}

// SetQuantity overwrites the unit's quantity for a manual adjustment, deriving
// the status and bumping the version like any other write.
func (repo *supplyRepository) SetQuantity(ctx context.Context, id uuid.UUID, quantity decimal.Decimal) (*entity.SupplyUnit, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplyUnitModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   quantity,
			"status":     string(entity.DeriveSupplyStatus(quantity)),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set supply quantity")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrSupplyNotFound
	}

	return repo.reload(ctx, id)
}

// SoftDelete marks the unit withdrawn. The row is kept so history entries that
// reference it keep resolving.
func (repo *supplyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SupplyUnitModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to withdraw supply unit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplyNotFound
	}

	return nil
}

func (repo *supplyRepository) reload(ctx context.Context, id uuid.UUID) (*entity.SupplyUnit, error) {
	var supplyM model.SupplyUnitModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplyM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload supply unit after update")
	}

	return toSupplyDomain(&supplyM), nil
}

// toSupplyDomain converts a GORM model to a domain entity.
func toSupplyDomain(data *model.SupplyUnitModel) *entity.SupplyUnit {
	return &entity.SupplyUnit{
		ID:            data.ID,
		ItemName:      data.ItemName,
		ItemType:      data.ItemType,
		Quantity:      data.Quantity,
		Unit:          data.Unit,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		OwnerOrgID:    data.OwnerOrgID,
		OwnerOrgName:  data.OwnerOrgName,
		Status:        entity.SupplyStatus(data.Status),
		ExpiresAt:     data.ExpiresAt,
		ConditionTags: data.ConditionTags,
		Deleted:       data.DeletedAt.Valid,
		Version:       data.Version,
		UpdatedAt:     data.UpdatedAt,
	}
}
