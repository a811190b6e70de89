package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is an affiliate product listed on the marketing pages.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	AmazonURL   string    `gorm:"column:amazon_url" json:"amazonUrl"`
	Category    string    `json:"category"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// SocialLink points at one of the business's social profiles.
type SocialLink struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Platform string    `gorm:"uniqueIndex;not null" json:"platform"`
	URL      string    `gorm:"not null" json:"url"`
	Order    int       `gorm:"column:display_order;default:0" json:"order"`

	CreatedAt time.Time `json:"createdAt"`
}

func (l *SocialLink) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
