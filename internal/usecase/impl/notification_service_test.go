package impl

import (
	"context"
	"testing"

	"relief/internal/domain/entity"
	domainerrors "relief/internal/domain/errors"
	"relief/internal/domain/repository"
	mockRepo "relief/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListForRecipient(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	ctx := context.Background()
	orgID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), RecipientOrgID: &orgID, Type: entity.NotificationResourceAllocated},
	}

	mockNotificationRepo.EXPECT().ListByRecipient(ctx, &orgID, 10, 0).Return(expected, nil)

	notifications, err := service.ListForRecipient(ctx, &orgID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_ListForRecipient_DefaultsPaging(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	ctx := context.Background()

	// A nil recipient lists the operator broadcasts.
	mockNotificationRepo.EXPECT().
		ListByRecipient(ctx, (*uuid.UUID)(nil), defaultNotificationPageSize, 0).
		Return([]*entity.Notification{}, nil)

	notifications, err := service.ListForRecipient(ctx, nil, 0, -3)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_MarkRead(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	ctx := context.Background()
	id := uuid.New()

	mockNotificationRepo.EXPECT().MarkRead(ctx, id).Return(nil)

	require.NoError(t, service.MarkRead(ctx, id))
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(mockNotificationRepo)

	ctx := context.Background()
	id := uuid.New()

	mockNotificationRepo.EXPECT().MarkRead(ctx, id).Return(repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
