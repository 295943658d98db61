package usecase

import (
	"context"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for the notification feed.
type NotificationUsecase interface {
	// ListForRecipient retrieves an organization's notifications, newest first.
	// A nil recipient lists the operator broadcasts.
	ListForRecipient(ctx context.Context, recipientOrgID *uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
