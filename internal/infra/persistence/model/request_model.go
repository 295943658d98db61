package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemandRequestModel is the GORM-specific struct for the 'demand_requests' table.
// Fulfilled requests are deleted, so every row here is still outstanding.
type DemandRequestModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItemName         string          `gorm:"type:text;not null;index:idx_request_item,priority:1"`
	ItemType         string          `gorm:"type:text;not null;index:idx_request_item,priority:2"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Unit             string          `gorm:"type:text;not null"`
	Latitude         float64         `gorm:"type:decimal(10,8);not null"`
	Longitude        float64         `gorm:"type:decimal(11,8);not null"`
	RequesterOrgID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	RequesterOrgName string          `gorm:"type:text;not null"`
	Urgency          string          `gorm:"type:text;not null;default:'normal'"`
	DisasterType     string          `gorm:"type:text"`
	Status           string          `gorm:"type:text;not null;default:'requested'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DemandRequestModel) TableName() string {
	return "demand_requests"
}
