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
	CartService interface {
		AddItem(ctx context.Context, userID, productID uint, quantity int, customInput string) (domain.Cart, error)
		RemoveItem(ctx context.Context, userID, productID uint) (domain.Cart, error)
		ViewCart(ctx context.Context, userID uint) (domain.CartView, error)
	}

	CartHandler struct {
		validate    *validator.Validate
		cartService CartService
	}

	AddToCartInput struct {
		Quantity    int    `json:"quantity" validate:"required,min=1"`
		CustomInput string `json:"custom_input"`
	}
)

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		validate:    validator.New(),
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	view, err := h.cartService.ViewCart(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to view cart", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(view))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	var request AddToCartInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validate add to cart input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	updatedCart, err := h.cartService.AddItem(c.Request().Context(), userID, uint(productID), request.Quantity, request.CustomInput)
	if err != nil {
		logger.Error("Failed to add item to cart", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updatedCart))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	updatedCart, err := h.cartService.RemoveItem(c.Request().Context(), userID, uint(productID))
	if err != nil {
		logger.Error("Failed to remove item from cart", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updatedCart))
}
