package postgres

import (
	"context"
	"errors"

	"github.com/CatcoinSupport/Game-Mart/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// CreateWithItems persists the order, its items, and the stock decrements as
// one transaction. A failure after the order row is created rolls everything
// back together.
//
// The decrement has no floor check: two concurrent checkouts can both pass
// the cart-side stock validation and drive quantity negative. Kept as-is,
// see DESIGN.md.
func (r *OrdersRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}

			err := tx.Model(&domain.Product{}).
				Where("id = ?", items[i].ProductID).
				Update("quantity", gorm.Expr("quantity - ?", items[i].Quantity)).Error
			if err != nil {
				return err
			}
		}

		order.Items = items

		return nil
	})
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, errors.New("order not found")
		}
		return domain.Order{}, err
	}

	return order, nil
}

func (r *OrdersRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// FindAll returns orders newest first, optionally filtered by status.
func (r *OrdersRepository) FindAll(ctx context.Context, status string) ([]domain.Order, error) {
	var orders []domain.Order

	query := r.DB.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrdersRepository) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrdersRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("order not found")
	}

	return nil
}

func (r *OrdersRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// SumTotalByStatus sums total_amount across orders with the given status.
func (r *OrdersRepository) SumTotalByStatus(ctx context.Context, status string) (float64, error) {
	var total float64

	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
