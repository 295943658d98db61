package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type supplyService struct {
	logger     *slog.Logger
	txManager  repository.TransactionManager
	supplyRepo repository.SupplyRepository
	historyRepo repository.HistoryRepository
}

// NewSupplyService creates a new supply service instance
func NewSupplyService(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	supplyRepo repository.SupplyRepository,
	historyRepo repository.HistoryRepository,
) usecase.SupplyUsecase {
	return &supplyService{
		logger:      logger,
		txManager:   txManager,
		supplyRepo:  supplyRepo,
		historyRepo: historyRepo,
	}
}

// ListCompatible retrieves allocatable supply for an item, unranked.
func (s *supplyService) ListCompatible(ctx context.Context, itemName, itemType string) ([]*entity.SupplyUnit, error) {
	units, err := s.supplyRepo.ListCompatible(ctx, itemName, itemType)
	if err != nil {
		return nil, fmt.Errorf("failed to list compatible supply: %w", err)
	}

	return units, nil
}

// UnitHistory retrieves the audit trail of one supply unit, newest first.
// Withdrawn units keep their history readable.
func (s *supplyService) UnitHistory(ctx context.Context, unitID uuid.UUID, limit, offset int) ([]*entity.HistoryEntry, error) {
	if _, err := s.supplyRepo.FindByID(ctx, unitID); err != nil {
		if errors.Is(err, repository.ErrSupplyNotFound) {
			return nil, domainerrors.ErrSupplyNotFound
		}

		return nil, fmt.Errorf("failed to find supply unit: %w", err)
	}

	entries, err := s.historyRepo.ListBySubject(ctx, entity.HistorySubjectSupplyUnit, unitID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list supply history: %w", err)
	}

	return entries, nil
}

// WithdrawSupply soft-deletes a unit on behalf of its owner. The delete, its
// audit entry, and the operator broadcast commit in one transaction.
func (s *supplyService) WithdrawSupply(ctx context.Context, unitID, actorOrgID uuid.UUID) error {
	unit, err := s.loadOwnedUnit(ctx, unitID, actorOrgID)
	if err != nil {
		return err
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewSupplyRepository().SoftDelete(ctx, unitID); err != nil {
			return fmt.Errorf("failed to soft-delete supply unit: %w", err)
		}

		entry := &entity.HistoryEntry{
			SubjectType:       entity.HistorySubjectSupplyUnit,
			SubjectID:         unitID,
			Event:             entity.HistoryEventDelete,
			QuantityDelta:     unit.Quantity.Neg(),
			ResultingQuantity: decimal.Zero,
			ResultingStatus:   "withdrawn",
			Remark:            "unit withdrawn by its owner",
			ActorID:           actorOrgID,
		}
		if err := f.NewHistoryRepository().Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append delete audit entry: %w", err)
		}

		broadcast := &entity.Notification{
			Type: entity.NotificationResourceWithdrawn,
			Message: fmt.Sprintf("%s withdrew %s %s of %s.",
				unit.OwnerOrgName, unit.Quantity, unit.Unit, unit.ItemName),
		}
		if err := f.NewNotificationRepository().Enqueue(ctx, broadcast); err != nil {
			return fmt.Errorf("failed to enqueue withdrawal broadcast: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "supply unit withdrawn",
		slog.String("supply_unit_id", unitID.String()),
		slog.String("owner_org_id", actorOrgID.String()))

	return nil
}

// AdjustQuantity overwrites a unit's quantity on behalf of its owner. The
// write, its audit entry, and the operator broadcast commit in one transaction.
func (s *supplyService) AdjustQuantity(ctx context.Context, unitID, actorOrgID uuid.UUID, quantity decimal.Decimal, remark string) (*entity.SupplyUnit, error) {
	if quantity.IsNegative() {
		return nil, domainerrors.ErrInvalidQuantity
	}

	unit, err := s.loadOwnedUnit(ctx, unitID, actorOrgID)
	if err != nil {
		return nil, err
	}

	var updated *entity.SupplyUnit
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		updated, err = f.NewSupplyRepository().SetQuantity(ctx, unitID, quantity)
		if err != nil {
			return fmt.Errorf("failed to set supply quantity: %w", err)
		}

		entry := &entity.HistoryEntry{
			SubjectType:       entity.HistorySubjectSupplyUnit,
			SubjectID:         unitID,
			Event:             entity.HistoryEventManualAdjust,
			QuantityDelta:     quantity.Sub(unit.Quantity),
			ResultingQuantity: updated.Quantity,
			ResultingStatus:   string(updated.Status),
			Remark:            remark,
			ActorID:           actorOrgID,
		}
		if err := f.NewHistoryRepository().Append(ctx, entry); err != nil {
			return fmt.Errorf("failed to append adjustment audit entry: %w", err)
		}

		broadcast := &entity.Notification{
			Type: entity.NotificationResourceAdjusted,
			Message: fmt.Sprintf("%s adjusted %s from %s to %s %s.",
				unit.OwnerOrgName, unit.ItemName, unit.Quantity, quantity, unit.Unit),
		}
		if err := f.NewNotificationRepository().Enqueue(ctx, broadcast); err != nil {
			return fmt.Errorf("failed to enqueue adjustment broadcast: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// loadOwnedUnit fetches a unit and verifies it is live and, when actorOrgID is
// set, owned by the acting organization.
func (s *supplyService) loadOwnedUnit(ctx context.Context, unitID, actorOrgID uuid.UUID) (*entity.SupplyUnit, error) {
	unit, err := s.supplyRepo.FindByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplyNotFound) {
			return nil, domainerrors.ErrSupplyNotFound
		}

		return nil, fmt.Errorf("failed to find supply unit: %w", err)
	}
	if unit.Deleted {
		return nil, domainerrors.ErrSupplyWithdrawn
	}
	if actorOrgID != uuid.Nil && unit.OwnerOrgID != actorOrgID {
		return nil, domainerrors.ErrSupplyOwnershipViolation
	}

	return unit, nil
}
