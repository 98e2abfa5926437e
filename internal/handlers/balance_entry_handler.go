package handlers

import (
	"errors"
	"net/http"

	"networth-tracker/internal/dto"
	apierrors "networth-tracker/internal/errors"
	"networth-tracker/internal/models"
	"networth-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BalanceEntryHandler handles balance entry HTTP requests
type BalanceEntryHandler struct {
	entryRepo   repositories.BalanceEntryRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
}

// NewBalanceEntryHandler creates a new balance entry handler
func NewBalanceEntryHandler(
	entryRepo repositories.BalanceEntryRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
) *BalanceEntryHandler {
	return &BalanceEntryHandler{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// CreateEntry records an account balance for one calendar day
//
// Method: POST /api/v1/accounts/:accountId/entries
func (h *BalanceEntryHandler) CreateEntry(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	var req dto.CreateBalanceEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.RequestValidation, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if _, err := h.accountRepo.GetByID(accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return SendError(c, apierrors.RequestInvalidDate, apierrors.WithDetails("date must be YYYY-MM-DD"))
	}
	if date.After(models.DateOnly(timeNow())) {
		return SendError(c, apierrors.RequestInvalidDate, apierrors.WithDetails("date must not be in the future"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return SendError(c, apierrors.EntryInvalidAmount)
	}

	entry := &models.BalanceEntry{
		AccountID: accountID,
		Date:      date,
		Amount:    amount,
	}

	if err := h.entryRepo.Create(entry); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEntryDate) {
			return SendError(c, apierrors.EntryDuplicateDate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// GetEntries lists an account's entries ascending by date
//
// Method: GET /api/v1/accounts/:accountId/entries
func (h *BalanceEntryHandler) GetEntries(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	if _, err := h.accountRepo.GetByID(accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	upTo := models.DateOnly(timeNow())
	if raw := c.QueryParam("up_to"); raw != "" {
		upTo, err = models.ParseDate(raw)
		if err != nil {
			return SendError(c, apierrors.RequestInvalidDate, apierrors.WithDetails("up_to must be YYYY-MM-DD"))
		}
	}

	entries, err := h.entryRepo.ListByAccount(accountID, upTo)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BalanceEntryListResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// DeleteEntry removes a single balance entry
//
// Method: DELETE /api/v1/accounts/:accountId/entries/:entryId
func (h *BalanceEntryHandler) DeleteEntry(c echo.Context) error {
	if _, err := uuid.Parse(c.Param("accountId")); err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		return SendError(c, apierrors.RequestValidation, apierrors.WithDetails("Invalid entry ID"))
	}

	if err := h.entryRepo.Delete(entryID); err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return SendError(c, apierrors.EntryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Balance entry deleted successfully",
	})
}
