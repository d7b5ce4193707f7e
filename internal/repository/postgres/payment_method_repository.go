package postgres

import (
	"context"
	"errors"

	"github.com/CatcoinSupport/Game-Mart/domain"

	"gorm.io/gorm"
)

type PaymentMethodRepository struct {
	DB *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		DB: db,
	}
}

func (r *PaymentMethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	if err := r.DB.WithContext(ctx).Create(&method).Error; err != nil {
		return err
	}

	return nil
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, id uint) (domain.PaymentMethod, error) {
	var method domain.PaymentMethod

	err := r.DB.WithContext(ctx).First(&method, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentMethod{}, errors.New("payment method not found")
		}
		return domain.PaymentMethod{}, err
	}

	return method, nil
}

func (r *PaymentMethodRepository) FindAll(ctx context.Context) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod

	if err := r.DB.WithContext(ctx).Find(&methods).Error; err != nil {
		return nil, err
	}

	return methods, nil
}

func (r *PaymentMethodRepository) FindActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod

	if err := r.DB.WithContext(ctx).Where("is_active = ?", true).Find(&methods).Error; err != nil {
		return nil, err
	}

	return methods, nil
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.PaymentMethod{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("payment method not found")
	}

	return nil
}
