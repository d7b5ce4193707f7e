package rest

import (
	"context"
	"net/http"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	// EmailLogReader reads the notification sink back for the admin viewer.
	EmailLogReader interface {
		ReadAll(ctx context.Context) ([]domain.EmailRecord, error)
	}

	EmailsHandler struct {
		logReader EmailLogReader
	}
)

func NewEmailsHandler(logReader EmailLogReader) *EmailsHandler {
	return &EmailsHandler{
		logReader: logReader,
	}
}

func (h *EmailsHandler) GetEmails(c echo.Context) error {
	emails, err := h.logReader.ReadAll(c.Request().Context())
	if err != nil {
		logger.Error("Failed to read email log", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(emails))
}
