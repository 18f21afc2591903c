package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TeamID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Role        string    `gorm:"type:varchar(50);not null"`
	DisplayRank int       `gorm:"not null;default:0"`
	JoinedAt    time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID"`
	Team Team `gorm:"foreignKey:TeamID"`
}
