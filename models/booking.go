package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
)

// Booking snapshots price and distance at creation time. The invariant
// TotalCost == ServicePrice + MileageCost holds at creation and the triple is
// never recomputed afterwards.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	ScheduledDate time.Time `gorm:"not null" json:"scheduledDate"`
	ScheduledTime string    `gorm:"not null" json:"scheduledTime"`
	Status        string    `gorm:"type:varchar(20);default:'pending'" json:"status"`

	ServicePrice  float64 `gorm:"type:decimal(10,2);not null" json:"servicePrice"`
	DistanceMiles float64 `gorm:"type:decimal(10,2);default:0" json:"distanceMiles"`
	MileageCost   float64 `gorm:"type:decimal(10,2);default:0" json:"mileageCost"`
	TotalCost     float64 `gorm:"type:decimal(10,2);not null" json:"totalCost"`

	CustomerAddress string  `json:"customerAddress"`
	CustomerLat     float64 `json:"customerLat"`
	CustomerLng     float64 `json:"customerLng"`

	Notes         string `json:"notes"`
	InternalNotes string `json:"internalNotes"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Service  *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
