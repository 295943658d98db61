package postgres

import (
	"context"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	"relief/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// historyRepository implements the repository.HistoryRepository interface.
// Only inserts and reads, the table is append-only.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

// Append persists one immutable history entry.
func (repo *historyRepository) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	historyM := fromHistoryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required history information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append history entry")
	}

	// Update the entity with generated values
	entry.ID = historyM.ID
	entry.CreatedAt = historyM.CreatedAt

	return nil
}

// ListBySubject retrieves the audit trail for one subject, newest first.
func (repo *historyRepository) ListBySubject(ctx context.Context, subjectType entity.HistorySubject, subjectID uuid.UUID, limit, offset int) ([]*entity.HistoryEntry, error) {
	var historyModels []*model.HistoryEntryModel

	query := repo.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", string(subjectType), subjectID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list history entries")
	}

	entries := make([]*entity.HistoryEntry, 0, len(historyModels))
	for _, historyM := range historyModels {
		entries = append(entries, toHistoryDomain(historyM))
	}

	return entries, nil
}

// toHistoryDomain converts a GORM model to a domain entity.
func toHistoryDomain(data *model.HistoryEntryModel) *entity.HistoryEntry {
	return &entity.HistoryEntry{
		ID:                data.ID,
		SubjectType:       entity.HistorySubject(data.SubjectType),
		SubjectID:         data.SubjectID,
		Event:             entity.HistoryEvent(data.Event),
		QuantityDelta:     data.QuantityDelta,
		ResultingQuantity: data.ResultingQuantity,
		ResultingStatus:   data.ResultingStatus,
		Remark:            data.Remark,
		ActorID:           data.ActorID,
		CreatedAt:         data.CreatedAt,
	}
}

// fromHistoryDomain converts a domain entity to a GORM model.
func fromHistoryDomain(data *entity.HistoryEntry) *model.HistoryEntryModel {
	return &model.HistoryEntryModel{
		ID:                data.ID,
		SubjectType:       string(data.SubjectType),
		SubjectID:         data.SubjectID,
		Event:             string(data.Event),
		QuantityDelta:     data.QuantityDelta,
		ResultingQuantity: data.ResultingQuantity,
		ResultingStatus:   data.ResultingStatus,
		Remark:            data.Remark,
		ActorID:           data.ActorID,
		CreatedAt:         data.CreatedAt,
	}
}
