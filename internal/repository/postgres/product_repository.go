package postgres

import (
	"context"
	"errors"

	"github.com/CatcoinSupport/Game-Mart/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.DB.WithContext(ctx).Create(&product).Error; err != nil {
		return err
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	var product domain.Product

	err := r.DB.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, errors.New("product not found")
		}
		return domain.Product{}, err
	}

	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product

	if err := r.DB.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) FindBySection(ctx context.Context, sectionID uint) ([]domain.Product, error) {
	var products []domain.Product

	if err := r.DB.WithContext(ctx).Where("section_id = ?", sectionID).Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) FindFeatured(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product

	if err := r.DB.WithContext(ctx).Where("is_featured = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("product not found")
	}

	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
