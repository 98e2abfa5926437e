package repositories

import (
	"errors"
	"time"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// balanceEntryRepository implements BalanceEntryRepositoryInterface
type balanceEntryRepository struct {
	db *gorm.DB
}

// NewBalanceEntryRepository creates a new balance entry repository
func NewBalanceEntryRepository(db *gorm.DB) BalanceEntryRepositoryInterface {
	return &balanceEntryRepository{db: db}
}

// Create inserts a new balance entry. A second entry on the same
// (account, date) is rejected with ErrDuplicateEntryDate.
func (r *balanceEntryRepository) Create(entry *models.BalanceEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEntryDate
		}
		if isValidationError(err) {
			return err
		}
		return storeError("failed to create balance entry", err)
	}
	return nil
}

// Delete removes a balance entry by ID
func (r *balanceEntryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.BalanceEntry{}, "id = ?", id)
	if result.Error != nil {
		return storeError("failed to delete balance entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// ListByAccount returns the account's entries up to and including upTo,
// ascending by date. The engine batch-fetches each account's history once
// per request and sweeps it in memory, so this is the only entry query the
// aggregation path issues per account.
func (r *balanceEntryRepository) ListByAccount(accountID uuid.UUID, upTo time.Time) ([]models.BalanceEntry, error) {
	var entries []models.BalanceEntry
	if err := r.db.Where("account_id = ? AND date <= ?", accountID, models.DateOnly(upTo)).
		Order("date ASC").Find(&entries).Error; err != nil {
		return nil, storeError("failed to list balance entries", err)
	}
	return entries, nil
}

// EarliestEntryDate returns the oldest entry date across all accounts.
func (r *balanceEntryRepository) EarliestEntryDate() (time.Time, bool, error) {
	var entry models.BalanceEntry
	err := r.db.Order("date ASC").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, storeError("failed to find earliest balance entry", err)
	}
	return models.DateOnly(entry.Date), true, nil
}
