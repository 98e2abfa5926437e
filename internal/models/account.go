package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccountTypeAsset     = "asset"
	AccountTypeLiability = "liability"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrAccountNameEmpty   = errors.New("account name is required")
)

// Account represents a tracked asset or liability. The balance history of an
// account lives in its BalanceEntry rows; the account itself carries only
// identity and classification.
type Account struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name              string         `gorm:"type:varchar(100);not null" json:"name"`
	Type              string         `gorm:"type:varchar(20);not null;index" json:"type"`
	Currency          string         `gorm:"type:varchar(3);not null" json:"currency"`
	IncludeInNetWorth bool           `gorm:"not null;default:true" json:"include_in_net_worth"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	BalanceEntries []BalanceEntry `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrAccountNameEmpty
	}

	if !IsValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}

	if !IsValidCurrencyCode(a.Currency) {
		return ErrInvalidCurrency
	}

	return nil
}

// IsLiability reports whether the account's balance counts against net worth.
func (a *Account) IsLiability() bool {
	return a.Type == AccountTypeLiability
}

// IsValidAccountType checks if the account type is one of the allowed values
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeAsset, AccountTypeLiability:
		return true
	default:
		return false
	}
}
