package rest

import (
	"context"
	"net/http"

	"github.com/CatcoinSupport/Game-Mart/business/settings"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SettingsService interface {
		GetSettings(ctx context.Context) settings.SiteSettings
		GetSiteDescription(ctx context.Context) string
		UpdateSettings(ctx context.Context, update settings.SiteSettings) error
	}

	SettingsHandler struct {
		validate        *validator.Validate
		settingsService SettingsService
	}

	SettingsInput struct {
		SiteDescription string `json:"site_description" validate:"required"`
		SenderEmail     string `json:"sender_email" validate:"required,email"`
	}
)

func NewSettingsHandler(settingsService SettingsService) *SettingsHandler {
	return &SettingsHandler{
		validate:        validator.New(),
		settingsService: settingsService,
	}
}

// GetSiteInfo is the public landing-page payload.
func (h *SettingsHandler) GetSiteInfo(c echo.Context) error {
	description := h.settingsService.GetSiteDescription(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"site_description": description,
	})
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.settingsService.GetSettings(c.Request().Context())))
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var request SettingsInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate settings input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	err := h.settingsService.UpdateSettings(c.Request().Context(), settings.SiteSettings{
		SiteDescription: request.SiteDescription,
		SenderEmail:     request.SenderEmail,
	})
	if err != nil {
		logger.Error("Failed to update settings", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Settings updated successfully",
	})
}
