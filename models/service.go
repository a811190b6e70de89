package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a detailing package offered on the site. Bookings snapshot the
// base price at creation time, so editing a service never changes past totals.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	BasePrice   float64   `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	Duration    int       `json:"duration"` // in minutes
	Category    string    `gorm:"default:'General'" json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
