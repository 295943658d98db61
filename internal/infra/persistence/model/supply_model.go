// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SupplyUnitModel is the GORM-specific struct for the 'supply_units' table.
// It represents one organization's stock of one item at one location.
type SupplyUnitModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItemName      string          `gorm:"type:text;not null;index:idx_supply_item,priority:1"`
	ItemType      string          `gorm:"type:text;not null;index:idx_supply_item,priority:2"`
	Quantity      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Unit          string          `gorm:"type:text;not null"`
	Latitude      float64         `gorm:"type:decimal(10,8);not null"`
	Longitude     float64         `gorm:"type:decimal(11,8);not null"`
	OwnerOrgID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerOrgName  string          `gorm:"type:text;not null"`
	Status        string          `gorm:"type:text;not null;default:'available'"`
	ExpiresAt     *time.Time
	ConditionTags []string `gorm:"type:jsonb;serializer:json"`
	// Version is the optimistic-concurrency token. Every write bumps it, and the
	// conditional decrement re-checks it inside the UPDATE's WHERE clause.
	Version   int64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SupplyUnitModel) TableName() string {
	return "supply_units"
}
