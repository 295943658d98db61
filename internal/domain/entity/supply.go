// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplyStatus represents the lifecycle state of a supply unit.
type SupplyStatus string

const (
	// SupplyStatusAvailable marks a unit that still holds stock.
	SupplyStatusAvailable SupplyStatus = "available"
	// SupplyStatusAllocated is a legacy label carried over from records created by
	// the old dashboard. It never blocks further allocation while quantity > 0.
	SupplyStatusAllocated SupplyStatus = "allocated"
	// SupplyStatusDepleted marks a unit whose quantity reached zero.
	SupplyStatusDepleted SupplyStatus = "depleted"
)

// SupplyUnit is one organization's stock of one named, typed item at one location.
type SupplyUnit struct {
	ID            uuid.UUID       `json:"id"`             // The unique identifier of the supply unit.
	ItemName      string          `json:"item_name"`      // The item name, matched case-insensitively.
	ItemType      string          `json:"item_type"`      // The item category, matched case-insensitively.
	Quantity      decimal.Decimal `json:"quantity"`       // Remaining stock, never negative.
	Unit          string          `json:"unit"`           // Unit of measure (pcs, kg, l, ...).
	Latitude      float64         `json:"latitude"`       // Geographic latitude of the stock location.
	Longitude     float64         `json:"longitude"`      // Geographic longitude of the stock location.
	OwnerOrgID    uuid.UUID       `json:"owner_org_id"`   // The organization that owns this stock.
	OwnerOrgName  string          `json:"owner_org_name"` // Display name of the owning organization.
	Status        SupplyStatus    `json:"status"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`     // Optional expiry of perishable stock.
	ConditionTags []string        `json:"condition_tags,omitempty"` // Optional condition tags (e.g. "refrigerated").
	Deleted       bool            `json:"deleted"`                  // Soft-delete flag set by the owning organization.
	Version       int64           `json:"version"`                  // Monotonically increasing, bumped on every write.
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Allocatable reports whether the unit may be drawn from: not withdrawn by its
// owner and holding a positive quantity. Status is deliberately not consulted
// here, quantity is the ground truth.
func (s *SupplyUnit) Allocatable() bool {
	return !s.Deleted && s.Quantity.IsPositive()
}

// MatchesItem reports whether the unit stocks the given item, comparing name and
// type case-insensitively.
func (s *SupplyUnit) MatchesItem(itemName, itemType string) bool {
	return strings.EqualFold(s.ItemName, itemName) && strings.EqualFold(s.ItemType, itemType)
}

// DeriveSupplyStatus returns the status implied by a quantity: depleted exactly
// when the quantity is zero, available otherwise.
func DeriveSupplyStatus(quantity decimal.Decimal) SupplyStatus {
	if quantity.IsZero() {
		return SupplyStatusDepleted
	}

	return SupplyStatusAvailable
}
