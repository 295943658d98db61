package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// A NULL recipient marks an operator broadcast.
type NotificationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientOrgID *uuid.UUID `gorm:"type:uuid;index"`
	Message        string     `gorm:"type:text;not null"`
	Type           string     `gorm:"type:text;not null"`
	Read           bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
