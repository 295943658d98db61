package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags what a notification is about so the dashboard can pick
// an icon and a landing page for it.
type NotificationType string

const (
	// NotificationResourceAllocated tells a requesting organization it received stock.
	NotificationResourceAllocated NotificationType = "resource_allocated"
	// NotificationResourceDonated tells a donor organization its stock was drawn upon.
	NotificationResourceDonated NotificationType = "resource_donated"
	// NotificationResourceWithdrawn tells operators a donor withdrew a supply unit.
	NotificationResourceWithdrawn NotificationType = "resource_withdrawn"
	// NotificationResourceAdjusted tells operators a supply quantity was corrected by hand.
	NotificationResourceAdjusted NotificationType = "resource_adjusted"
)

// Notification is one message in an organization's feed. A nil recipient means
// the message is broadcast to all operators.
type Notification struct {
	ID             uuid.UUID        `json:"id"`
	RecipientOrgID *uuid.UUID       `json:"recipient_org_id,omitempty"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"type"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"created_at"`
}
