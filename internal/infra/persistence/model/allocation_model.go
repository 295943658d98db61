package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationRecordModel is the GORM-specific struct for the 'allocation_records'
// table. The unique idempotency key is what makes keyed retries single-shot.
type AllocationRecordModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IdempotencyKey   string          `gorm:"type:text;not null;uniqueIndex"`
	RequestID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ActorID          uuid.UUID       `gorm:"type:uuid;not null"`
	RequestedAmount  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	PlannedAmount    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	AppliedAmount    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	RequestRemainder decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	RequestFulfilled bool            `gorm:"not null;default:false"`
	Status           string          `gorm:"type:text;not null"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (AllocationRecordModel) TableName() string {
	return "allocation_records"
}
