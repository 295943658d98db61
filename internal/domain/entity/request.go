package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus represents the lifecycle state of a demand request. A fulfilled
// request has no status of its own: its row is removed the moment the outstanding
// quantity reaches zero.
type RequestStatus string

const (
	// RequestStatusRequested marks a request no allocation has touched yet.
	RequestStatusRequested RequestStatus = "requested"
	// RequestStatusPartiallyAllocated marks a request with a reduced but positive remainder.
	RequestStatusPartiallyAllocated RequestStatus = "partially_allocated"
)

// Urgency grades how pressing a demand request is.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyNormal Urgency = "normal"
	UrgencyLow    Urgency = "low"
)

// DemandRequest is one organization's outstanding need for a named, typed item.
type DemandRequest struct {
	ID               uuid.UUID       `json:"id"`
	ItemName         string          `json:"item_name"`
	ItemType         string          `json:"item_type"`
	Quantity         decimal.Decimal `json:"quantity"` // Quantity still outstanding, never negative.
	Unit             string          `json:"unit"`
	Latitude         float64         `json:"latitude"`  // Geographic latitude of the point of need.
	Longitude        float64         `json:"longitude"` // Geographic longitude of the point of need.
	RequesterOrgID   uuid.UUID       `json:"requester_org_id"`
	RequesterOrgName string          `json:"requester_org_name"`
	Urgency          Urgency         `json:"urgency"`
	DisasterType     string          `json:"disaster_type,omitempty"` // Optional disaster tag (flood, earthquake, ...).
	Status           RequestStatus   `json:"status"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
