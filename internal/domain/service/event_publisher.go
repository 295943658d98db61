// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"
)

// AllocationEvent is the message published after an allocation commits, for
// downstream consumers such as the SMS/USSD gateway and the analytics feed.
type AllocationEvent struct {
	RequestID        string   `json:"request_id"`      // For distributed tracing of the HTTP call.
	AllocationID     string   `json:"allocation_id"`   // Idempotency record ID when the call was keyed.
	DemandRequestID  string   `json:"demand_request_id"`
	RequesterOrgID   string   `json:"requester_org_id"`
	ItemName         string   `json:"item_name"`
	ItemType         string   `json:"item_type"`
	AppliedAmount    string   `json:"applied_amount"` // Decimal string, e.g. "40.5".
	RequestFulfilled bool     `json:"request_fulfilled"`
	DonorOrgIDs      []string `json:"donor_org_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAllocationEvent publishes an allocation event for async processing.
	// Publishing is best-effort and never part of the allocation's consistency boundary.
	PublishAllocationEvent(ctx context.Context, event *AllocationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
