package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/CatcoinSupport/Game-Mart/business/orders"
	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
	"github.com/CatcoinSupport/Game-Mart/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	OrdersService interface {
		Checkout(ctx context.Context, userID uint, input orders.CheckoutInput) (domain.Order, error)
		UpdateStatus(ctx context.Context, orderID uint, status string) (domain.Order, error)
		GetOrder(ctx context.Context, orderID uint) (domain.Order, error)
		GetUserOrders(ctx context.Context, userID uint) ([]domain.Order, error)
		GetAllOrders(ctx context.Context, status string) ([]domain.Order, error)
		GetDashboardStats(ctx context.Context) (orders.DashboardStats, error)
	}

	OrdersHandler struct {
		ordersService OrdersService
		timeout       time.Duration
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		ordersService: ordersService,
		timeout:       30 * time.Second,
	}
}

// Checkout reads a multipart form carrying the payment method, the buyer's
// payment reference, and the proof-of-payment image.
func (h *OrdersHandler) Checkout(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.CheckoutDuration.Observe(time.Since(start).Seconds())
	}()

	userID := c.Get("user_id").(uint)

	var paymentMethodID uint
	if raw := c.FormValue("payment_method_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid payment method"})
		}
		paymentMethodID = uint(parsed)
	}

	input := orders.CheckoutInput{
		PaymentMethodID: paymentMethodID,
		PaymentID:       c.FormValue("payment_id"),
	}

	if fileHeader, err := c.FormFile("payment_confirmation"); err == nil && fileHeader.Filename != "" {
		src, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open payment confirmation", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid payment confirmation image"})
		}
		defer src.Close()

		input.ProofFilename = fileHeader.Filename
		input.Proof = src
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.ordersService.Checkout(ctx, userID, input)
	if err != nil {
		logger.Error("Checkout failed", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.OrdersCreated.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetMyOrders(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	userOrders, err := h.ordersService.GetUserOrders(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get user orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(userOrders))
}

// GetOrderByID returns a single order to its owner or to an admin.
func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order ID"})
	}

	order, err := h.ordersService.GetOrder(c.Request().Context(), uint(id))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	userID := c.Get("user_id").(uint)
	role, _ := c.Get("role").(string)
	if order.UserID != userID && !strings.EqualFold(role, "admin") {
		return c.JSON(http.StatusForbidden, ResponseError{Message: "access denied"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

// GetAllOrders lists every order for the admin view, optionally filtered by
// status.
func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "all" {
		status = ""
	}

	allOrders, err := h.ordersService.GetAllOrders(c.Request().Context(), status)
	if err != nil {
		logger.Error("Failed to get all orders", err)
		if strings.Contains(err.Error(), "invalid") {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(allOrders))
}

func (h *OrdersHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid order ID"})
	}

	status := c.Param("status")

	order, err := h.ordersService.UpdateStatus(c.Request().Context(), uint(id), status)
	if err != nil {
		logger.Error("Failed to update order status", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.OrderStatusUpdates.WithLabelValues(order.Status).Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(order))
}

func (h *OrdersHandler) Dashboard(c echo.Context) error {
	stats, err := h.ordersService.GetDashboardStats(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build dashboard stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}
