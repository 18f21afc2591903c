package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog rows are append-only; no updated_at or deleted_at.
type ActivityLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	Action    string     `gorm:"type:text;not null"`
	Timestamp time.Time  `gorm:"not null"`
	IPAddress *string    `gorm:"type:varchar(45)"`

	Team Team `gorm:"foreignKey:TeamID"`
}
