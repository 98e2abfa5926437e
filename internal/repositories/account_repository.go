package repositories

import (
	"errors"

	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if isValidationError(err) {
			return err
		}
		return storeError("failed to create account", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	if err := r.db.First(account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, storeError("failed to get account", err)
	}
	return account, nil
}

// GetAll retrieves all accounts ordered by creation time
func (r *accountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, storeError("failed to list accounts", err)
	}
	return accounts, nil
}

// Update persists changes to an account's mutable attributes
func (r *accountRepository) Update(account *models.Account) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"name":                 account.Name,
			"type":                 account.Type,
			"currency":             account.Currency,
			"include_in_net_worth": account.IncludeInNetWorth,
			"updated_at":           account.UpdatedAt,
		})
	if result.Error != nil {
		return storeError("failed to update account", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Delete removes an account and cascades to its balance entries
func (r *accountRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.BalanceEntry{}).Error; err != nil {
			return storeError("failed to delete balance entries", err)
		}

		result := tx.Delete(&models.Account{}, "id = ?", id)
		if result.Error != nil {
			return storeError("failed to delete account", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}

// isValidationError reports whether the error came from a model Validate hook
// rather than the database itself.
func isValidationError(err error) bool {
	return errors.Is(err, models.ErrInvalidAccountType) ||
		errors.Is(err, models.ErrInvalidCurrency) ||
		errors.Is(err, models.ErrAccountNameEmpty) ||
		errors.Is(err, models.ErrNegativeBalance) ||
		errors.Is(err, models.ErrNonPositiveRate) ||
		errors.Is(err, models.ErrIdentityRatePair) ||
		errors.Is(err, models.ErrEntryDateMissing) ||
		errors.Is(err, models.ErrEntryDateFuture)
}
