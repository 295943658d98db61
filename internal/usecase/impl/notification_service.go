package impl

import (
	"context"
	"errors"
	"fmt"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	"relief/internal/usecase"

	"github.com/google/uuid"
)

const defaultNotificationPageSize = 50

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{notificationRepo: notificationRepo}
}

// ListForRecipient retrieves an organization's notifications, newest first.
func (s *notificationService) ListForRecipient(ctx context.Context, recipientOrgID *uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.ListByRecipient(ctx, recipientOrgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead flags a notification as read.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
