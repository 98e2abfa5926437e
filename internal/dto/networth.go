package dto

// NetWorthHistoryRequest carries the query parameters of a history request.
// Dates are ISO-8601 day strings; semantic validation of the period/range
// combination belongs to the history service, not the binding layer.
type NetWorthHistoryRequest struct {
	Period                  string `query:"period" json:"period" validate:"required,history_period"`
	StartDate               string `query:"start_date" json:"start_date,omitempty" validate:"omitempty,iso_date"`
	EndDate                 string `query:"end_date" json:"end_date,omitempty" validate:"omitempty,iso_date"`
	TargetCurrency          string `query:"target_currency" json:"target_currency,omitempty" validate:"omitempty,currency_code"`
	SamplingStrategy        string `query:"sampling_strategy" json:"sampling_strategy,omitempty" validate:"omitempty,sampling_strategy"`
	MaxDataPoints           int    `query:"max_data_points" json:"max_data_points,omitempty" validate:"omitempty,gt=0,lte=2000"`
	IncludeAccountBreakdown bool   `query:"include_account_breakdown" json:"include_account_breakdown,omitempty"`
}

// NetWorthPointResponse is one formatted sample of the series. Amounts are
// decimal strings rounded to the target currency's minor units.
type NetWorthPointResponse struct {
	Date             string                        `json:"date"`
	NetWorth         string                        `json:"net_worth"`
	TotalAssets      string                        `json:"total_assets"`
	TotalLiabilities string                        `json:"total_liabilities"`
	Accounts         []AccountContributionResponse `json:"accounts,omitempty"`
}

// AccountContributionResponse is one account's converted share of a point.
type AccountContributionResponse struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Currency  string `json:"currency"`
	Amount    string `json:"amount"`
	Included  bool   `json:"included"`
}

// NetWorthHistoryResponse echoes the parameters actually used alongside the
// series, so the chart can label the result accurately.
type NetWorthHistoryResponse struct {
	Period           string                  `json:"period"`
	StartDate        string                  `json:"start_date"`
	EndDate          string                  `json:"end_date"`
	Currency         string                  `json:"currency"`
	SamplingStrategy string                  `json:"sampling_strategy"`
	MaxDataPoints    int                     `json:"max_data_points"`
	ActualDataPoints int                     `json:"actual_data_points"`
	Data             []NetWorthPointResponse `json:"data"`
	CurrencyCount    int                     `json:"currency_count"`
	AccountCount     int                     `json:"account_count"`
	RateApproximated bool                    `json:"rate_approximated"`
}
