package repositories

import (
	"errors"
	"time"

	"networth-tracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// exchangeRateRepository implements ExchangeRateRepositoryInterface
type exchangeRateRepository struct {
	db *gorm.DB
}

// NewExchangeRateRepository creates a new exchange rate repository
func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepositoryInterface {
	return &exchangeRateRepository{db: db}
}

// Upsert inserts or replaces the rate for the (base, quote, date) key.
// Unlike balance entries, re-recording a rate for the same day is an update,
// not a conflict: rate feeds routinely re-publish corrected fixings.
func (r *exchangeRateRepository) Upsert(rate *models.ExchangeRate) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "base_currency"},
			{Name: "quote_currency"},
			{Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(rate).Error
	if err != nil {
		if isValidationError(err) {
			return err
		}
		return storeError("failed to upsert exchange rate", err)
	}
	return nil
}

// ListByPair returns rates for the exact pair with date <= upTo, ascending.
func (r *exchangeRateRepository) ListByPair(base, quote string, upTo time.Time) ([]models.ExchangeRate, error) {
	var rates []models.ExchangeRate
	if err := r.db.Where("base_currency = ? AND quote_currency = ? AND date <= ?",
		base, quote, models.DateOnly(upTo)).
		Order("date ASC").Find(&rates).Error; err != nil {
		return nil, storeError("failed to list exchange rates", err)
	}
	return rates, nil
}

// FirstAfter returns the earliest rate strictly after the given date.
func (r *exchangeRateRepository) FirstAfter(base, quote string, after time.Time) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := r.db.Where("base_currency = ? AND quote_currency = ? AND date > ?",
		base, quote, models.DateOnly(after)).
		Order("date ASC").First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, storeError("failed to find exchange rate", err)
	}
	return &rate, nil
}
