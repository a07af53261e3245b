package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submenu groups dishes inside a Menu.
type Submenu struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"uniqueIndex;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	MenuID      uuid.UUID `gorm:"type:uuid;not null;index" json:"menu_id"`
	Dishes      []Dish    `gorm:"foreignKey:SubmenuID;constraint:OnDelete:CASCADE" json:"dishes,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (s *Submenu) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
