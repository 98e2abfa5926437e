package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCurrency is used when no preference row exists yet.
const DefaultCurrency = "USD"

// UserPreference holds the display preferences consulted when a request does
// not specify them explicitly. A single row per installation; identity and
// session handling belong to another subsystem.
type UserPreference struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DefaultCurrency string    `gorm:"type:varchar(3);not null;default:'USD'" json:"default_currency"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for UserPreference
func (p *UserPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.DefaultCurrency == "" {
		p.DefaultCurrency = DefaultCurrency
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	if !IsValidCurrencyCode(p.DefaultCurrency) {
		return ErrInvalidCurrency
	}
	return nil
}
