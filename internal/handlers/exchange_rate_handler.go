package handlers

import (
	"errors"
	"net/http"

	"networth-tracker/internal/dto"
	apierrors "networth-tracker/internal/errors"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ExchangeRateHandler handles exchange rate HTTP requests
type ExchangeRateHandler struct {
	rateRepo repositories.ExchangeRateRepositoryInterface
}

// NewExchangeRateHandler creates a new exchange rate handler
func NewExchangeRateHandler(rateRepo repositories.ExchangeRateRepositoryInterface) *ExchangeRateHandler {
	return &ExchangeRateHandler{rateRepo: rateRepo}
}

// UpsertRate records a conversion rate for one pair and day, replacing any
// existing rate for the same key
//
// Method: PUT /api/v1/rates
func (h *ExchangeRateHandler) UpsertRate(c echo.Context) error {
	var req dto.UpsertExchangeRateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.RequestValidation, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.BaseCurrency == req.QuoteCurrency {
		return SendError(c, apierrors.RateInvalidPair)
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return SendError(c, apierrors.RequestInvalidDate, apierrors.WithDetails("date must be YYYY-MM-DD"))
	}

	value, err := decimal.NewFromString(req.Rate)
	if err != nil || !value.IsPositive() {
		return SendError(c, apierrors.RateInvalid)
	}

	rate := &models.ExchangeRate{
		BaseCurrency:  req.BaseCurrency,
		QuoteCurrency: req.QuoteCurrency,
		Date:          date,
		Rate:          value,
	}

	if err := h.rateRepo.Upsert(rate); err != nil {
		if errors.Is(err, models.ErrIdentityRatePair) {
			return SendError(c, apierrors.RateInvalidPair)
		}
		if errors.Is(err, models.ErrNonPositiveRate) {
			return SendError(c, apierrors.RateInvalid)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, rate)
}

// GetRates lists a pair's stored rates ascending by date
//
// Method: GET /api/v1/rates
func (h *ExchangeRateHandler) GetRates(c echo.Context) error {
	base := c.QueryParam("base")
	quote := c.QueryParam("quote")
	if !models.IsValidCurrencyCode(base) || !models.IsValidCurrencyCode(quote) {
		return SendError(c, apierrors.RequestValidation,
			apierrors.WithDetails("base and quote must be three-letter currency codes"))
	}

	upTo := models.DateOnly(timeNow())
	if raw := c.QueryParam("up_to"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return SendError(c, apierrors.RequestInvalidDate, apierrors.WithDetails("up_to must be YYYY-MM-DD"))
		}
		upTo = parsed
	}

	rates, err := h.rateRepo.ListByPair(base, quote, upTo)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExchangeRateListResponse{
		Rates: rates,
		Total: len(rates),
	})
}
