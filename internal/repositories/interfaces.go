package repositories

import (
	"time"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account persistence
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetAll() ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
}

// BalanceEntryRepositoryInterface defines the contract for balance entry persistence
type BalanceEntryRepositoryInterface interface {
	Create(entry *models.BalanceEntry) error
	Delete(id uuid.UUID) error
	// ListByAccount returns the account's entries with date <= upTo,
	// ascending by date.
	ListByAccount(accountID uuid.UUID, upTo time.Time) ([]models.BalanceEntry, error)
	// EarliestEntryDate returns the oldest entry date across all accounts.
	// The boolean is false when no entries exist at all.
	EarliestEntryDate() (time.Time, bool, error)
}

// ExchangeRateRepositoryInterface defines the contract for exchange rate persistence
type ExchangeRateRepositoryInterface interface {
	Upsert(rate *models.ExchangeRate) error
	// ListByPair returns rates for the exact (base, quote) pair with
	// date <= upTo, ascending by date. The inverse pair is a separate key.
	ListByPair(base, quote string, upTo time.Time) ([]models.ExchangeRate, error)
	// FirstAfter returns the earliest rate for the pair with date > after,
	// or ErrRateNotFound.
	FirstAfter(base, quote string, after time.Time) (*models.ExchangeRate, error)
}

// UserPreferenceRepositoryInterface defines the contract for user preference persistence
type UserPreferenceRepositoryInterface interface {
	Get() (*models.UserPreference, error)
	Set(defaultCurrency string) (*models.UserPreference, error)
}
