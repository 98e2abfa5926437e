package repositories

import (
	"errors"
	"time"

	"networth-tracker/internal/models"

	"gorm.io/gorm"
)

// userPreferenceRepository implements UserPreferenceRepositoryInterface
type userPreferenceRepository struct {
	db *gorm.DB
}

// NewUserPreferenceRepository creates a new user preference repository
func NewUserPreferenceRepository(db *gorm.DB) UserPreferenceRepositoryInterface {
	return &userPreferenceRepository{db: db}
}

// Get returns the preference row, creating the default one on first use.
func (r *userPreferenceRepository) Get() (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.First(&pref).Error
	if err == nil {
		return &pref, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeError("failed to get user preference", err)
	}

	pref = models.UserPreference{DefaultCurrency: models.DefaultCurrency}
	if err := r.db.Create(&pref).Error; err != nil {
		return nil, storeError("failed to create default user preference", err)
	}
	return &pref, nil
}

// Set updates the default currency preference.
func (r *userPreferenceRepository) Set(defaultCurrency string) (*models.UserPreference, error) {
	if !models.IsValidCurrencyCode(defaultCurrency) {
		return nil, models.ErrInvalidCurrency
	}

	pref, err := r.Get()
	if err != nil {
		return nil, err
	}

	pref.DefaultCurrency = defaultCurrency
	pref.UpdatedAt = time.Now()
	if err := r.db.Model(pref).Updates(map[string]interface{}{
		"default_currency": pref.DefaultCurrency,
		"updated_at":       pref.UpdatedAt,
	}).Error; err != nil {
		return nil, storeError("failed to update user preference", err)
	}
	return pref, nil
}
