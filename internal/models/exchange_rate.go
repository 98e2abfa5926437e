package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNonPositiveRate  = errors.New("exchange rate must be positive")
	ErrIdentityRatePair = errors.New("identity currency pair must not be stored")
)

// ExchangeRate stores the conversion rate between two currencies effective on
// one calendar day. Like balance entries, rates are sparse: a day with no
// stored rate inherits the most recent earlier one. The identity pair
// (base == quote) is implicit with rate 1 and is never persisted.
type ExchangeRate struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BaseCurrency  string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair_date" json:"base_currency"`
	QuoteCurrency string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair_date" json:"quote_currency"`
	Date          time.Time       `gorm:"type:date;not null;uniqueIndex:idx_exchange_rates_pair_date" json:"date"`
	Rate          decimal.Decimal `gorm:"type:decimal(18,8);not null" json:"rate"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for ExchangeRate
func (r *ExchangeRate) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	r.Date = DateOnly(r.Date)

	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for ExchangeRate
func (r *ExchangeRate) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

// Validate validates the exchange rate fields
func (r *ExchangeRate) Validate() error {
	if !IsValidCurrencyCode(r.BaseCurrency) || !IsValidCurrencyCode(r.QuoteCurrency) {
		return ErrInvalidCurrency
	}

	if r.BaseCurrency == r.QuoteCurrency {
		return ErrIdentityRatePair
	}

	if !r.Rate.IsPositive() {
		return ErrNonPositiveRate
	}

	return nil
}
