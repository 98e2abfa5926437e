package handlers

import (
	"net/http"

	"networth-tracker/internal/dto"
	apierrors "networth-tracker/internal/errors"
	"networth-tracker/internal/repositories"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler handles user preference HTTP requests
type PreferenceHandler struct {
	prefRepo repositories.UserPreferenceRepositoryInterface
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(prefRepo repositories.UserPreferenceRepositoryInterface) *PreferenceHandler {
	return &PreferenceHandler{prefRepo: prefRepo}
}

// GetPreferences returns the stored preferences, creating defaults on first use
//
// Method: GET /api/v1/preferences
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	pref, err := h.prefRepo.Get()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, pref)
}

// UpdatePreferences sets the default target currency
//
// Method: PUT /api/v1/preferences
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	var req dto.UpdatePreferenceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.RequestValidation, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	pref, err := h.prefRepo.Set(req.DefaultCurrency)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, pref)
}
