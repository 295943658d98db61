package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"relief/internal/domain/entity"
	mockUsecase "relief/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListForOrganization(t *testing.T) {
	uc := mockUsecase.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewNotificationHandler(uc, logger)

	orgID := uuid.New()
	notifications := []*entity.Notification{{
		ID:             uuid.New(),
		RecipientOrgID: &orgID,
		Type:           entity.NotificationResourceAllocated,
		Message:        "Your request for Water received 40 pcs.",
	}}
	uc.EXPECT().ListForRecipient(mock.Anything, &orgID, 50, 0).Return(notifications, nil)

	c, rec := newJSONContext(http.MethodGet, "/organizations/"+orgID.String()+"/notifications", "")
	c.SetParamNames("id")
	c.SetParamValues(orgID.String())

	require.NoError(t, handler.ListForOrganization(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "resource_allocated")
}

func TestNotificationHandler_ListForOrganization_OperatorBroadcasts(t *testing.T) {
	uc := mockUsecase.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewNotificationHandler(uc, logger)

	uc.EXPECT().ListForRecipient(mock.Anything, (*uuid.UUID)(nil), 50, 0).
		Return([]*entity.Notification{}, nil)

	c, rec := newJSONContext(http.MethodGet, "/organizations/operators/notifications", "")
	c.SetParamNames("id")
	c.SetParamValues("operators")

	require.NoError(t, handler.ListForOrganization(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	uc := mockUsecase.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewNotificationHandler(uc, logger)

	id := uuid.New()
	uc.EXPECT().MarkRead(mock.Anything, id).Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/notifications/"+id.String()+"/read", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
