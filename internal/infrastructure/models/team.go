package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name                 string    `gorm:"type:varchar(100);not null"`
	StripeCustomerID     *string   `gorm:"type:text;uniqueIndex"`
	StripeSubscriptionID *string   `gorm:"type:text;uniqueIndex"`
	StripeProductID      *string   `gorm:"type:text"`
	PlanName             *string   `gorm:"type:varchar(50)"`
	SubscriptionStatus   *string   `gorm:"type:varchar(20)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
