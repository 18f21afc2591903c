package models

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	WebsiteURL string    `gorm:"type:text;not null"`
	Profile    *string   `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"foreignKey:UserID"`
}
