package models

import (
	"time"

	"github.com/google/uuid"
)

type Generation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FlowID      string    `gorm:"type:text;not null"`
	VariationID string    `gorm:"type:text;not null"`
	TemplateID  string    `gorm:"type:text;not null"`
	Content     string    `gorm:"type:jsonb;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'draft'"`
	Version     int       `gorm:"not null;default:1"`
	Language    string    `gorm:"type:varchar(10);not null;default:'en'"`
	CreatedAt   time.Time

	Brand Brand `gorm:"foreignKey:BrandID"`
}

// GenerationVersion snapshots are immutable once written.
type GenerationVersion struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	GenerationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content      string    `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time

	Generation Generation `gorm:"foreignKey:GenerationID"`
}
