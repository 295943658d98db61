package repository

import (
	"context"
	"errors"

	"relief/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Enqueue persists a new notification for later delivery to the recipient's feed.
	Enqueue(ctx context.Context, notification *entity.Notification) error

	// ListByRecipient retrieves an organization's notifications, newest first.
	// A nil recipient lists the operator broadcasts.
	ListByRecipient(ctx context.Context, recipientOrgID *uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
