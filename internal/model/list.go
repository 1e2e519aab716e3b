package model

import (
	"time"

	"github.com/google/uuid"
)

type List struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `gorm:"not null"`
	Position  int       `gorm:"not null;uniqueIndex:idx_lists_board_position"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lists_board_position"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Board Board  `gorm:"foreignKey:BoardID"`
	Cards []Card `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`
}
