package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNegativeBalance  = errors.New("balance amount cannot be negative")
	ErrEntryDateMissing = errors.New("balance entry date is required")
	ErrEntryDateFuture  = errors.New("balance entry date cannot be in the future")
)

// BalanceEntry records an account's balance as observed on one calendar day.
// Entries are sparse: the user records them at arbitrary dates, and a value
// holds until superseded by a later entry. At most one entry may exist per
// (account, date); a second insert on the same day is a conflict, never an
// overwrite.
type BalanceEntry struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_balance_entries_account_date" json:"account_id"`
	Date      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_balance_entries_account_date" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for BalanceEntry
func (e *BalanceEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	// Entries carry day granularity only.
	e.Date = DateOnly(e.Date)

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// Validate validates the balance entry fields
func (e *BalanceEntry) Validate() error {
	if e.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if e.Date.IsZero() {
		return ErrEntryDateMissing
	}

	if DateOnly(e.Date).After(DateOnly(time.Now())) {
		return ErrEntryDateFuture
	}

	if e.Amount.IsNegative() {
		return ErrNegativeBalance
	}

	return nil
}
