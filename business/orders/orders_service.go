package orders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/CatcoinSupport/Game-Mart/business/catalog"
	"github.com/CatcoinSupport/Game-Mart/business/user"
	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	FindAll(ctx context.Context, status string) ([]domain.Order, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumTotalByStatus(ctx context.Context, status string) (float64, error)
}

// PaymentMethodRepository contract interface
type PaymentMethodRepository interface {
	FindByID(ctx context.Context, id uint) (domain.PaymentMethod, error)
}

// CartService contract interface
type CartService interface {
	ViewCart(ctx context.Context, userID uint) (domain.CartView, error)
	ClearCart(ctx context.Context, userID uint) error
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(toName, toEmail, subject, message string) error
}

// ProofStore contract interface
type ProofStore interface {
	Save(originalFilename string, r io.Reader) (string, error)
}

type CheckoutInput struct {
	PaymentMethodID uint
	PaymentID       string
	ProofFilename   string
	Proof           io.Reader
}

type DashboardStats struct {
	TotalProducts int64          `json:"total_products"`
	TotalSections int64          `json:"total_sections"`
	TotalUsers    int64          `json:"total_users"`
	PendingOrders int64          `json:"pending_orders"`
	TotalProfit   float64        `json:"total_profit"`
	RecentOrders  []domain.Order `json:"recent_orders"`
}

type ordersService struct {
	orderRepo   OrdersRepository
	methodRepo  PaymentMethodRepository
	cartService CartService
	userRepo    user.UserRepository
	productRepo catalog.ProductRepository
	sectionRepo catalog.SectionRepository
	notifRepo   NotificationRepository
	proofStore  ProofStore
}

func NewOrdersService(
	orderRepo OrdersRepository,
	methodRepo PaymentMethodRepository,
	cartService CartService,
	userRepo user.UserRepository,
	productRepo catalog.ProductRepository,
	sectionRepo catalog.SectionRepository,
	notifRepo NotificationRepository,
	proofStore ProofStore,
) *ordersService {
	return &ordersService{
		orderRepo:   orderRepo,
		methodRepo:  methodRepo,
		cartService: cartService,
		userRepo:    userRepo,
		productRepo: productRepo,
		sectionRepo: sectionRepo,
		notifRepo:   notifRepo,
		proofStore:  proofStore,
	}
}

// Checkout turns the user's cart into a pending order. Validation runs in a
// fixed sequence and any failure leaves cart, stock, and orders untouched:
// cart non-empty, payment method, payment reference, proof image. The order
// row, its items, and the stock decrements commit as one transaction.
func (s *ordersService) Checkout(ctx context.Context, userID uint, input CheckoutInput) (domain.Order, error) {
	cartView, err := s.cartService.ViewCart(ctx, userID)
	if err != nil {
		logger.Error("Failed to load cart for checkout", err)
		return domain.Order{}, err
	}

	if len(cartView.Items) == 0 {
		return domain.Order{}, errors.New("your cart is empty")
	}

	if input.PaymentMethodID == 0 {
		return domain.Order{}, errors.New("please select a payment method")
	}

	method, err := s.methodRepo.FindByID(ctx, input.PaymentMethodID)
	if err != nil {
		logger.Error("Payment method not found for checkout", err)
		return domain.Order{}, err
	}

	if !method.IsActive {
		return domain.Order{}, errors.New("payment method is not available")
	}

	if strings.TrimSpace(input.PaymentID) == "" {
		return domain.Order{}, errors.New("payment id is required")
	}

	if input.Proof == nil || input.ProofFilename == "" {
		return domain.Order{}, errors.New("payment confirmation image is required")
	}

	proofFilename, err := s.proofStore.Save(input.ProofFilename, input.Proof)
	if err != nil {
		logger.Error("Failed to save payment confirmation", err)
		return domain.Order{}, errors.New("invalid payment confirmation image")
	}

	order := domain.Order{
		UserID:                      userID,
		PaymentMethodID:             method.ID,
		TotalAmount:                 cartView.Total,
		Status:                      domain.OrderStatusPending,
		PaymentID:                   strings.TrimSpace(input.PaymentID),
		PaymentConfirmationFilename: proofFilename,
	}

	items := make([]domain.OrderItem, 0, len(cartView.Items))
	for _, line := range cartView.Items {
		items = append(items, domain.OrderItem{
			ProductID:        line.Product.ID,
			Quantity:         line.Quantity,
			Price:            line.Price,
			CustomInputValue: line.CustomInputValue,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, &order, items); err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	if err := s.cartService.ClearCart(ctx, userID); err != nil {
		logger.Warn("Failed to clear cart after checkout", err)
	}

	// Fire and forget: a failed notification never fails the checkout.
	s.notifyOrder(ctx, order, false)

	return order, nil
}

// UpdateStatus drives the admin approval machine: pending is the only state
// transitions leave from, accepted and rejected are terminal. Requesting the
// status an order already has is a no-op with no notification.
func (s *ordersService) UpdateStatus(ctx context.Context, orderID uint, status string) (domain.Order, error) {
	if !domain.ValidOrderStatus(status) || status == domain.OrderStatusPending {
		return domain.Order{}, errors.New("invalid status")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		logger.Error("Order not found for status update", err)
		return domain.Order{}, err
	}

	if order.Status == status {
		return order, nil
	}

	if order.Status != domain.OrderStatusPending {
		return domain.Order{}, fmt.Errorf("order is already %s", order.Status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		logger.Error("Failed to update order status", err)
		return domain.Order{}, err
	}

	order.Status = status
	s.notifyOrder(ctx, order, true)

	return order, nil
}

func (s *ordersService) GetOrder(ctx context.Context, orderID uint) (domain.Order, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *ordersService) GetUserOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *ordersService) GetAllOrders(ctx context.Context, status string) ([]domain.Order, error) {
	if status != "" && !domain.ValidOrderStatus(status) {
		return nil, errors.New("invalid status")
	}

	return s.orderRepo.FindAll(ctx, status)
}

func (s *ordersService) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalSections, err = s.sectionRepo.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.PendingOrders, err = s.orderRepo.CountByStatus(ctx, domain.OrderStatusPending); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalProfit, err = s.orderRepo.SumTotalByStatus(ctx, domain.OrderStatusAccepted); err != nil {
		return DashboardStats{}, err
	}
	if stats.RecentOrders, err = s.orderRepo.FindRecent(ctx, 5); err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}
