package database

import (
	"fmt"
	"testing"
	"time"

	"networth-tracker/internal/config"
	"networth-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, name, accountType, currency string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:              name,
		Type:              accountType,
		Currency:          currency,
		IncludeInNetWorth: true,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestEntry(t *testing.T, db *DB, account *models.Account, date string, amount string) *models.BalanceEntry {
	t.Helper()

	day, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid test entry date %q: %v", date, err)
	}

	entry := &models.BalanceEntry{
		AccountID: account.ID,
		Date:      day,
		Amount:    decimal.RequireFromString(amount),
	}

	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test balance entry: %v", err)
	}

	return entry
}

func CreateTestRate(t *testing.T, db *DB, base, quote, date, rate string) *models.ExchangeRate {
	t.Helper()

	day, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid test rate date %q: %v", date, err)
	}

	exchangeRate := &models.ExchangeRate{
		BaseCurrency:  base,
		QuoteCurrency: quote,
		Date:          day,
		Rate:          decimal.RequireFromString(rate),
	}

	if err := db.Create(exchangeRate).Error; err != nil {
		t.Fatalf("failed to create test exchange rate: %v", err)
	}

	return exchangeRate
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"balance_entries",
		"exchange_rates",
		"user_preferences",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

// FreezeTime returns a fixed date helper for deterministic history tests
func FreezeTime(date string) func() time.Time {
	day, err := models.ParseDate(date)
	if err != nil {
		panic(fmt.Sprintf("invalid frozen date %q: %v", date, err))
	}
	return func() time.Time { return day }
}
