package payment

import (
	"context"
	"errors"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

// PaymentMethodRepository contract interface
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *domain.PaymentMethod) error
	FindByID(ctx context.Context, id uint) (domain.PaymentMethod, error)
	FindAll(ctx context.Context) ([]domain.PaymentMethod, error)
	FindActive(ctx context.Context) ([]domain.PaymentMethod, error)
	Delete(ctx context.Context, id uint) error
}

type paymentMethodService struct {
	methodRepo PaymentMethodRepository
}

func NewPaymentMethodService(methodRepo PaymentMethodRepository) *paymentMethodService {
	return &paymentMethodService{
		methodRepo: methodRepo,
	}
}

func (s *paymentMethodService) CreateMethod(ctx context.Context, method *domain.PaymentMethod) (domain.PaymentMethod, error) {
	if method.Name == "" {
		logger.Error("Invalid payment method: name is required")
		return domain.PaymentMethod{}, errors.New("payment method name is required")
	}

	if method.WalletAddress == "" {
		logger.Error("Invalid payment method: wallet address is required")
		return domain.PaymentMethod{}, errors.New("wallet address is required")
	}

	if err := s.methodRepo.Create(ctx, method); err != nil {
		logger.Error("Failed to create payment method", err)
		return domain.PaymentMethod{}, err
	}

	return *method, nil
}

// GetActiveMethods lists the methods shown to buyers at checkout.
func (s *paymentMethodService) GetActiveMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.FindActive(ctx)
	if err != nil {
		logger.Error("Failed to get active payment methods", err)
		return nil, err
	}

	return methods, nil
}

func (s *paymentMethodService) GetAllMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all payment methods", err)
		return nil, err
	}

	return methods, nil
}

func (s *paymentMethodService) DeleteMethod(ctx context.Context, id uint) error {
	if _, err := s.methodRepo.FindByID(ctx, id); err != nil {
		logger.Error("Payment method not found for deletion", err)
		return err
	}

	if err := s.methodRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete payment method", err)
		return err
	}

	return nil
}
