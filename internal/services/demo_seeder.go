package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// SeedSummary reports what a demo seeding run created.
type SeedSummary struct {
	Accounts       int `json:"accounts"`
	BalanceEntries int `json:"balance_entries"`
	ExchangeRates  int `json:"exchange_rates"`
}

// seedCurrencies is the pool demo accounts draw from. USD is the implicit
// hub: rates are seeded for every other currency against USD, which also
// exercises the resolver's inverse-pair fallback for non-USD targets.
var seedCurrencies = []string{"USD", "EUR", "GBP", "CHF", "JPY"}

// demoSeederService generates a plausible ledger for local development:
// sparse balance entries at irregular dates and a daily-ish rate history.
type demoSeederService struct {
	accountRepo repositories.AccountRepositoryInterface
	entryRepo   repositories.BalanceEntryRepositoryInterface
	rateRepo    repositories.ExchangeRateRepositoryInterface
	rng         *rand.Rand
	faker       *gofakeit.Faker
	now         func() time.Time
}

// NewDemoSeederService creates a new demo data seeder. The seed is fixed so
// repeated runs on a fresh database produce the same ledger.
func NewDemoSeederService(
	accountRepo repositories.AccountRepositoryInterface,
	entryRepo repositories.BalanceEntryRepositoryInterface,
	rateRepo repositories.ExchangeRateRepositoryInterface,
) DemoSeederServiceInterface {
	const seed = 1
	return &demoSeederService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		rateRepo:    rateRepo,
		rng:         rand.New(rand.NewSource(seed)),
		faker:       gofakeit.New(seed),
		now:         time.Now,
	}
}

// Seed creates accountCount accounts with historyMonths months of balance
// entries, plus weekly exchange rates for every non-USD currency used.
func (s *demoSeederService) Seed(accountCount, historyMonths int) (*SeedSummary, error) {
	if accountCount < 1 {
		accountCount = 5
	}
	if historyMonths < 1 {
		historyMonths = 12
	}

	today := models.DateOnly(s.now())
	start := today.AddDate(0, -historyMonths, 0)
	summary := &SeedSummary{}
	used := map[string]bool{}

	for i := 0; i < accountCount; i++ {
		account := s.randomAccount(i)
		if err := s.accountRepo.Create(account); err != nil {
			return nil, fmt.Errorf("failed to seed account: %w", err)
		}
		summary.Accounts++
		used[account.Currency] = true

		created, err := s.seedEntries(account, start, today)
		if err != nil {
			return nil, err
		}
		summary.BalanceEntries += created
	}

	for currency := range used {
		if currency == "USD" {
			continue
		}
		created, err := s.seedRates(currency, start, today)
		if err != nil {
			return nil, err
		}
		summary.ExchangeRates += created
	}

	slog.Info("demo data seeded",
		"accounts", summary.Accounts,
		"balance_entries", summary.BalanceEntries,
		"exchange_rates", summary.ExchangeRates)

	return summary, nil
}

func (s *demoSeederService) randomAccount(i int) *models.Account {
	accountType := models.AccountTypeAsset
	name := s.faker.Company() + " " + s.faker.RandomString([]string{"Checking", "Savings", "Brokerage", "Pension"})
	if i%4 == 3 {
		accountType = models.AccountTypeLiability
		name = s.faker.Company() + " " + s.faker.RandomString([]string{"Mortgage", "Car Loan", "Credit Card"})
	}

	return &models.Account{
		Name:              name,
		Type:              accountType,
		Currency:          seedCurrencies[s.rng.Intn(len(seedCurrencies))],
		IncludeInNetWorth: s.rng.Intn(10) != 0,
	}
}

// seedEntries records a balance roughly every 2-6 weeks with a drifting
// amount, mimicking a user updating balances by hand.
func (s *demoSeederService) seedEntries(account *models.Account, start, end time.Time) (int, error) {
	amount := decimal.NewFromInt(int64(500 + s.rng.Intn(50000)))
	created := 0

	for d := start.AddDate(0, 0, s.rng.Intn(21)); !d.After(end); d = d.AddDate(0, 0, 14+s.rng.Intn(28)) {
		drift := decimal.NewFromInt(int64(s.rng.Intn(2000) - 800))
		amount = amount.Add(drift)
		if amount.IsNegative() {
			amount = amount.Neg()
		}

		entry := &models.BalanceEntry{
			AccountID: account.ID,
			Date:      d,
			Amount:    amount,
		}
		if err := s.entryRepo.Create(entry); err != nil {
			return created, fmt.Errorf("failed to seed balance entry: %w", err)
		}
		created++
	}
	return created, nil
}

// seedRates writes a weekly rate for currency->USD with a small random walk
// around a plausible base.
func (s *demoSeederService) seedRates(currency string, start, end time.Time) (int, error) {
	base := map[string]float64{
		"EUR": 1.08,
		"GBP": 1.26,
		"CHF": 1.12,
		"JPY": 0.0067,
	}[currency]
	if base == 0 {
		base = 1
	}

	created := 0
	rate := base
	for d := start; !d.After(end); d = d.AddDate(0, 0, 7) {
		rate += rate * (s.rng.Float64() - 0.5) * 0.02

		record := &models.ExchangeRate{
			BaseCurrency:  currency,
			QuoteCurrency: "USD",
			Date:          d,
			Rate:          decimal.NewFromFloat(rate).Round(8),
		}
		if err := s.rateRepo.Upsert(record); err != nil {
			return created, fmt.Errorf("failed to seed exchange rate: %w", err)
		}
		created++
	}
	return created, nil
}
