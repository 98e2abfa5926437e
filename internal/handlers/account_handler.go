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
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountRepo repositories.AccountRepositoryInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountRepo repositories.AccountRepositoryInterface) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

// CreateAccount creates a new tracked account
//
// Method: POST /api/v1/accounts
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.RequestValidation, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	includeInNetWorth := true
	if req.IncludeInNetWorth != nil {
		includeInNetWorth = *req.IncludeInNetWorth
	}

	account := &models.Account{
		Name:              req.Name,
		Type:              req.Type,
		Currency:          req.Currency,
		IncludeInNetWorth: includeInNetWorth,
	}

	if err := h.accountRepo.Create(account); err != nil {
		if errors.Is(err, models.ErrInvalidAccountType) {
			return SendError(c, apierrors.AccountInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// GetAccounts retrieves all tracked accounts
//
// Method: GET /api/v1/accounts
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts, err := h.accountRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// GetAccount retrieves a specific account by ID
//
// Method: GET /api/v1/accounts/:accountId
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	account, err := h.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// UpdateAccount edits an account's mutable attributes
//
// Method: PUT /api/v1/accounts/:accountId
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.RequestValidation, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	account.Name = req.Name
	account.Type = req.Type
	account.Currency = req.Currency
	account.IncludeInNetWorth = req.IncludeInNetWorth

	if err := h.accountRepo.Update(account); err != nil {
		if errors.Is(err, models.ErrInvalidAccountType) {
			return SendError(c, apierrors.AccountInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account and its balance entries
//
// Method: DELETE /api/v1/accounts/:accountId
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, apierrors.AccountInvalidID)
	}

	if err := h.accountRepo.Delete(accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return SendError(c, apierrors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Account deleted successfully",
	})
}
