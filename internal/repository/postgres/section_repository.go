package postgres

import (
	"context"
	"errors"

	"github.com/CatcoinSupport/Game-Mart/domain"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{
		DB: db,
	}
}

func (r *SectionRepository) Create(ctx context.Context, section *domain.Section) error {
	if err := r.DB.WithContext(ctx).Create(&section).Error; err != nil {
		return err
	}

	return nil
}

func (r *SectionRepository) FindByID(ctx context.Context, id uint) (domain.Section, error) {
	var section domain.Section

	err := r.DB.WithContext(ctx).First(&section, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Section{}, errors.New("section not found")
		}
		return domain.Section{}, err
	}

	return section, nil
}

func (r *SectionRepository) FindAll(ctx context.Context) ([]domain.Section, error) {
	var sections []domain.Section

	if err := r.DB.WithContext(ctx).Find(&sections).Error; err != nil {
		return nil, err
	}

	return sections, nil
}

// Delete removes a section together with its products in one transaction.
func (r *SectionRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("section_id = ?", id).Delete(&domain.Product{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Section{}, id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errors.New("section not found")
		}

		return nil
	})
}

func (r *SectionRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&domain.Section{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
