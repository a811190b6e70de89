package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is created on first booking and keyed by email. Every later booking
// with the same email overwrites the contact fields (last write wins).
type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Postcode string    `json:"postcode"`

	// Set from the last successful geocode; left untouched when geocoding fails.
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
