package handler

import (
	"log/slog"
	"net/http"

	"relief/internal/delivery/http/response"
	"relief/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-feed handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListForOrganization handles an organization's notification feed. The reserved
// segment "operators" lists the operator broadcasts.
func (h *NotificationHandler) ListForOrganization(c echo.Context) error {
	var recipient *uuid.UUID
	if raw := c.Param("id"); raw != "operators" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_ORG_ID", "Organization ID must be a UUID")
		}
		recipient = &orgID
	}

	limit, offset := paging(c)
	notifications, err := h.uc.ListForRecipient(c.Request().Context(), recipient, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_NOTIFICATION_ID", "Notification ID must be a UUID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Notification marked read")
}
