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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Enqueue persists a new notification.
func (repo *notificationRepository) Enqueue(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByRecipient retrieves an organization's notifications, newest first.
// A nil recipient lists operator broadcasts instead.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientOrgID *uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if recipientOrgID != nil {
		query = query.Where("recipient_org_id = ?", *recipientOrgID)
	} else {
		query = query.Where("recipient_org_id IS NULL")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flags a notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// toNotificationDomain converts a GORM model to a domain entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:             data.ID,
		RecipientOrgID: data.RecipientOrgID,
		Message:        data.Message,
		Type:           entity.NotificationType(data.Type),
		Read:           data.Read,
		CreatedAt:      data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain entity to a GORM model.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:             data.ID,
		RecipientOrgID: data.RecipientOrgID,
		Message:        data.Message,
		Type:           string(data.Type),
		Read:           data.Read,
		CreatedAt:      data.CreatedAt,
	}
}
