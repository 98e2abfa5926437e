package repositories

import (
	"testing"

	"networth-tracker/internal/database"
	"networth-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.Account{
		Name:              "Brokerage",
		Type:              models.AccountTypeAsset,
		Currency:          "USD",
		IncludeInNetWorth: true,
	}

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
	s.NotZero(account.UpdatedAt)
}

func (s *AccountRepositorySuite) TestCreate_InvalidType() {
	account := &models.Account{
		Name:     "Brokerage",
		Type:     "checking",
		Currency: "USD",
	}

	err := s.repo.Create(account)
	s.ErrorIs(err, models.ErrInvalidAccountType)
}

func (s *AccountRepositorySuite) TestGetByID() {
	account := database.CreateTestAccount(s.T(), s.db, "Savings", models.AccountTypeAsset, "EUR")

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal(account.ID, found.ID)
	s.Equal("Savings", found.Name)
	s.Equal("EUR", found.Currency)
}

func (s *AccountRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetAll() {
	database.CreateTestAccount(s.T(), s.db, "Checking", models.AccountTypeAsset, "USD")
	database.CreateTestAccount(s.T(), s.db, "Mortgage", models.AccountTypeLiability, "USD")

	accounts, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(accounts, 2)
}

func (s *AccountRepositorySuite) TestGetAll_Empty() {
	accounts, err := s.repo.GetAll()
	s.NoError(err)
	s.Empty(accounts)
}

func (s *AccountRepositorySuite) TestUpdate() {
	account := database.CreateTestAccount(s.T(), s.db, "Old Name", models.AccountTypeAsset, "USD")

	account.Name = "New Name"
	account.Type = models.AccountTypeLiability
	account.IncludeInNetWorth = false

	err := s.repo.Update(account)
	s.NoError(err)

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal("New Name", found.Name)
	s.Equal(models.AccountTypeLiability, found.Type)
	s.False(found.IncludeInNetWorth)
}

func (s *AccountRepositorySuite) TestUpdate_NotFound() {
	account := &models.Account{
		ID:       uuid.New(),
		Name:     "Ghost",
		Type:     models.AccountTypeAsset,
		Currency: "USD",
	}

	err := s.repo.Update(account)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestDelete_CascadesEntries() {
	account := database.CreateTestAccount(s.T(), s.db, "Checking", models.AccountTypeAsset, "USD")
	database.CreateTestEntry(s.T(), s.db, account, "2024-01-15", "1000.00")
	database.CreateTestEntry(s.T(), s.db, account, "2024-02-15", "1100.00")

	err := s.repo.Delete(account.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(account.ID)
	s.ErrorIs(err, ErrAccountNotFound)

	var count int64
	s.db.Model(&models.BalanceEntry{}).Where("account_id = ?", account.ID).Count(&count)
	s.Zero(count)
}

func (s *AccountRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestDelete_DoesNotAffectOtherAccounts() {
	keep := database.CreateTestAccount(s.T(), s.db, "Keep", models.AccountTypeAsset, "USD")
	drop := database.CreateTestAccount(s.T(), s.db, "Drop", models.AccountTypeAsset, "USD")
	keptEntry := database.CreateTestEntry(s.T(), s.db, keep, "2024-01-15", "500.00")
	database.CreateTestEntry(s.T(), s.db, drop, "2024-01-15", "900.00")

	s.NoError(s.repo.Delete(drop.ID))

	var remaining models.BalanceEntry
	err := s.db.First(&remaining, "id = ?", keptEntry.ID).Error
	s.NoError(err)
	s.True(remaining.Amount.Equal(decimal.RequireFromString("500.00")))
}
