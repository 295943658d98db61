package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoryEntryModel is the GORM-specific struct for the 'history_entries' table.
// The table is append-only: rows are inserted in the same logical operation as
// the mutation they describe and never touched again.
type HistoryEntryModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubjectType       string          `gorm:"type:text;not null;index:idx_history_subject,priority:1"`
	SubjectID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_history_subject,priority:2"`
	Event             string          `gorm:"type:text;not null"`
	QuantityDelta     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	ResultingQuantity decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	ResultingStatus   string          `gorm:"type:text;not null"`
	Remark            string          `gorm:"type:text"`
	ActorID           uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt         time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (HistoryEntryModel) TableName() string {
	return "history_entries"
}
