package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PaymentMethodService interface {
		CreateMethod(ctx context.Context, method *domain.PaymentMethod) (domain.PaymentMethod, error)
		GetActiveMethods(ctx context.Context) ([]domain.PaymentMethod, error)
		GetAllMethods(ctx context.Context) ([]domain.PaymentMethod, error)
		DeleteMethod(ctx context.Context, id uint) error
	}

	PaymentMethodHandler struct {
		validate      *validator.Validate
		methodService PaymentMethodService
	}

	PaymentMethodInput struct {
		Name          string `json:"name" validate:"required"`
		WalletAddress string `json:"wallet_address" validate:"required"`
		Description   string `json:"description"`
		IsActive      *bool  `json:"is_active"`
	}
)

func NewPaymentMethodHandler(methodService PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		validate:      validator.New(),
		methodService: methodService,
	}
}

// GetActiveMethods is the buyer-facing list shown at checkout.
func (h *PaymentMethodHandler) GetActiveMethods(c echo.Context) error {
	methods, err := h.methodService.GetActiveMethods(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get active payment methods", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(methods))
}

func (h *PaymentMethodHandler) GetAllMethods(c echo.Context) error {
	methods, err := h.methodService.GetAllMethods(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get payment methods", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(methods))
}

func (h *PaymentMethodHandler) CreateMethod(c echo.Context) error {
	var request PaymentMethodInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate payment method input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	method, err := h.methodService.CreateMethod(c.Request().Context(), &domain.PaymentMethod{
		Name:          request.Name,
		WalletAddress: request.WalletAddress,
		Description:   request.Description,
		IsActive:      isActive,
	})
	if err != nil {
		logger.Error("Failed to create payment method", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(method))
}

func (h *PaymentMethodHandler) DeleteMethod(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid payment method ID"})
	}

	if err := h.methodService.DeleteMethod(c.Request().Context(), uint(id)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Payment method deleted successfully",
	})
}
