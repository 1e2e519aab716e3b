package model

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name            string    `gorm:"not null"`
	Description     string
	BackgroundColor string    `gorm:"type:varchar(7)"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User  User   `gorm:"foreignKey:UserID"`
	Lists []List `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}
