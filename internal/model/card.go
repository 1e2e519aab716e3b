package model

import (
	"time"

	"github.com/google/uuid"
)

type Card struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	Position    int        `gorm:"not null;uniqueIndex:idx_cards_list_position"`
	DueDate     *time.Time
	CoverColor  string    `gorm:"type:varchar(7);default:'#ffffff'"`
	ListID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cards_list_position"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	List List `gorm:"foreignKey:ListID"`
}
