package models

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Role      string    `gorm:"type:varchar(50);not null"`
	InvitedBy uuid.UUID `gorm:"type:uuid;not null"`
	InvitedAt time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`

	Team    Team `gorm:"foreignKey:TeamID"`
	Inviter User `gorm:"foreignKey:InvitedBy"`
}
