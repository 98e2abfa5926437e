package dto

import (
	"networth-tracker/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating an account
type CreateAccountRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	Type              string `json:"type" validate:"required,oneof=asset liability"`
	Currency          string `json:"currency" validate:"required,currency_code"`
	IncludeInNetWorth *bool  `json:"include_in_net_worth,omitempty"`
}

// UpdateAccountRequest represents the request payload for editing an account's
// mutable attributes
type UpdateAccountRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	Type              string `json:"type" validate:"required,oneof=asset liability"`
	Currency          string `json:"currency" validate:"required,currency_code"`
	IncludeInNetWorth bool   `json:"include_in_net_worth"`
}

// CreateBalanceEntryRequest records an account balance for one calendar day
type CreateBalanceEntryRequest struct {
	Date   string `json:"date" validate:"required,iso_date"`
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

// UpsertExchangeRateRequest records a conversion rate for one calendar day
type UpsertExchangeRateRequest struct {
	BaseCurrency  string `json:"base_currency" validate:"required,currency_code"`
	QuoteCurrency string `json:"quote_currency" validate:"required,currency_code"`
	Date          string `json:"date" validate:"required,iso_date"`
	Rate          string `json:"rate" validate:"required,decimal_amount"`
}

// UpdatePreferenceRequest sets the default target currency
type UpdatePreferenceRequest struct {
	DefaultCurrency string `json:"default_currency" validate:"required,currency_code"`
}

// Response DTOs

// AccountListResponse represents the full list of accounts
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// BalanceEntryListResponse represents an account's entries ascending by date
type BalanceEntryListResponse struct {
	Entries []models.BalanceEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// ExchangeRateListResponse represents a pair's rates ascending by date
type ExchangeRateListResponse struct {
	Rates []models.ExchangeRate `json:"rates"`
	Total int                   `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
