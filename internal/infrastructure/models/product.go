package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description *string   `gorm:"type:text"`
	Price       *string   `gorm:"type:decimal(10,2)"`
	ImageURL    *string   `gorm:"type:text"`
	ExternalID  *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Brand Brand `gorm:"foreignKey:BrandID"`
}
