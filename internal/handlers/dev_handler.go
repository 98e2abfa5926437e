package handlers

import (
	"net/http"

	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seeder services.DemoSeederServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.DemoSeederServiceInterface) *DevHandler {
	return &DevHandler{seeder: seeder}
}

// SeedDemoData populates the store with generated accounts, balance entries
// and exchange rates
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - accounts: number of accounts to create (default: 5, max: 50)
//   - months: months of history to generate (default: 12, max: 120)
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	accounts := getIntQueryParam(c, "accounts", 5)
	if accounts < 1 {
		accounts = 1
	}
	if accounts > 50 {
		accounts = 50
	}

	months := getIntQueryParam(c, "months", 12)
	if months < 1 {
		months = 1
	}
	if months > 120 {
		months = 120
	}

	summary, err := h.seeder.Seed(accounts, months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "demo data generated successfully",
		"accounts":        summary.Accounts,
		"balance_entries": summary.BalanceEntries,
		"exchange_rates":  summary.ExchangeRates,
	})
}
