package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Requested period presets.
const (
	Period1M     = "1M"
	Period3M     = "3M"
	Period6M     = "6M"
	Period12M    = "12M"
	PeriodAll    = "ALL"
	PeriodCustom = "CUSTOM"
)

// Sampling strategies.
const (
	StrategyDaily    = "daily"
	StrategyWeekly   = "weekly"
	StrategyMonthly  = "monthly"
	StrategyAdaptive = "adaptive"
)

// DefaultMaxDataPoints bounds the series size when the request does not set
// an explicit budget.
const DefaultMaxDataPoints = 60

// IsValidPeriod checks if the period is one of the allowed presets
func IsValidPeriod(period string) bool {
	switch period {
	case Period1M, Period3M, Period6M, Period12M, PeriodAll, PeriodCustom:
		return true
	default:
		return false
	}
}

// IsValidStrategy checks if the sampling strategy is one of the allowed values
func IsValidStrategy(strategy string) bool {
	switch strategy {
	case StrategyDaily, StrategyWeekly, StrategyMonthly, StrategyAdaptive:
		return true
	default:
		return false
	}
}

// SamplingSpec is the resolved sampling plan for one request: the effective
// granularity and the ascending list of sample dates. Derived per request,
// never persisted.
type SamplingSpec struct {
	Strategy string      `json:"strategy"`
	Dates    []time.Time `json:"dates"`
}

// AccountContribution is one account's share of a data point, converted to
// the target currency. Excluded accounts appear with Included=false and do
// not count toward the point's totals.
type AccountContribution struct {
	AccountID uuid.UUID       `json:"account_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Included  bool            `json:"included"`
}

// NetWorthPoint is one sample of the net-worth series. All amounts are in
// the target currency. Liabilities are a positive magnitude; NetWorth is
// TotalAssets minus TotalLiabilities.
type NetWorthPoint struct {
	Date             time.Time             `json:"date"`
	NetWorth         decimal.Decimal       `json:"net_worth"`
	TotalAssets      decimal.Decimal       `json:"total_assets"`
	TotalLiabilities decimal.Decimal       `json:"total_liabilities"`
	Accounts         []AccountContribution `json:"accounts,omitempty"`
}

// HistoryDiagnostics describes how a series was computed, so charts can
// label the result accurately.
type HistoryDiagnostics struct {
	CurrencyCount    int  `json:"currency_count"`
	AccountCount     int  `json:"account_count"`
	RateApproximated bool `json:"rate_approximated"`
}

// NetWorthHistory is the full result of a history computation: the series
// plus the parameters actually used and diagnostic metadata.
type NetWorthHistory struct {
	Period           string             `json:"period"`
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	Currency         string             `json:"currency"`
	SamplingStrategy string             `json:"sampling_strategy"`
	MaxDataPoints    int                `json:"max_data_points"`
	ActualDataPoints int                `json:"actual_data_points"`
	Data             []NetWorthPoint    `json:"data"`
	Diagnostics      HistoryDiagnostics `json:"diagnostics"`
}
