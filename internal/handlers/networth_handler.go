package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"networth-tracker/internal/dto"
	apierrors "networth-tracker/internal/errors"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"
	"networth-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// NetWorthHandler handles net-worth history HTTP requests
type NetWorthHandler struct {
	historyService services.NetWorthHistoryServiceInterface
}

// NewNetWorthHandler creates a new net-worth handler
func NewNetWorthHandler(historyService services.NetWorthHistoryServiceInterface) *NetWorthHandler {
	return &NetWorthHandler{historyService: historyService}
}

// GetHistory computes the net-worth series for the requested period
//
// Method: GET /api/v1/networth/history
//
// Query parameters:
//   - period: 1M, 3M, 6M, 12M, ALL or CUSTOM (required)
//   - start_date, end_date: YYYY-MM-DD, required for CUSTOM only
//   - target_currency: three-letter code, defaults to the stored preference
//   - sampling_strategy: adaptive, daily, weekly or monthly
//   - max_data_points: series size bound, defaults to 60
//   - include_account_breakdown: include per-account contributions
func (h *NetWorthHandler) GetHistory(c echo.Context) error {
	var req dto.NetWorthHistoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.RequestValidation, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	history, err := h.historyService.GetHistory(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			return SendError(c, apierrors.RequestInvalidRange, apierrors.WithDetails(err.Error()))
		}
		var missingRate *services.MissingExchangeRateError
		if errors.As(err, &missingRate) {
			detail := fmt.Sprintf("no rate from %s to %s on or around %s",
				missingRate.From, missingRate.To, models.FormatDate(missingRate.Date))
			return SendError(c, apierrors.RateMissing, apierrors.WithDetails(detail))
		}
		if errors.Is(err, repositories.ErrStoreUnavailable) {
			return SendError(c, apierrors.StoreUnavailable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, formatHistory(history))
}

// formatHistory renders the computed series for transport. Amounts become
// decimal strings at the target currency's minor-unit precision, dates
// become ISO day strings.
func formatHistory(history *models.NetWorthHistory) dto.NetWorthHistoryResponse {
	places := models.CurrencyMinorUnits(history.Currency)
	data := make([]dto.NetWorthPointResponse, 0, len(history.Data))
	for _, point := range history.Data {
		data = append(data, formatPoint(point, places))
	}

	return dto.NetWorthHistoryResponse{
		Period:           history.Period,
		StartDate:        models.FormatDate(history.StartDate),
		EndDate:          models.FormatDate(history.EndDate),
		Currency:         history.Currency,
		SamplingStrategy: history.SamplingStrategy,
		MaxDataPoints:    history.MaxDataPoints,
		ActualDataPoints: history.ActualDataPoints,
		Data:             data,
		CurrencyCount:    history.Diagnostics.CurrencyCount,
		AccountCount:     history.Diagnostics.AccountCount,
		RateApproximated: history.Diagnostics.RateApproximated,
	}
}

func formatPoint(point models.NetWorthPoint, places int32) dto.NetWorthPointResponse {
	resp := dto.NetWorthPointResponse{
		Date:             models.FormatDate(point.Date),
		NetWorth:         point.NetWorth.StringFixed(places),
		TotalAssets:      point.TotalAssets.StringFixed(places),
		TotalLiabilities: point.TotalLiabilities.StringFixed(places),
	}

	for _, contribution := range point.Accounts {
		resp.Accounts = append(resp.Accounts, dto.AccountContributionResponse{
			AccountID: contribution.AccountID.String(),
			Name:      contribution.Name,
			Type:      contribution.Type,
			Currency:  contribution.Currency,
			Amount:    contribution.Amount.StringFixed(places),
			Included:  contribution.Included,
		})
	}

	return resp
}
