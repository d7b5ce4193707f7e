package postgres

import (
	"context"

	"github.com/CatcoinSupport/Game-Mart/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{
		DB: db,
	}
}

// Get returns the stored value or the default when the key is absent.
func (r *SettingsRepository) Get(ctx context.Context, key, defaultValue string) string {
	var setting domain.SiteSetting

	err := r.DB.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		return defaultValue
	}

	return setting.Value
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	setting := domain.SiteSetting{Key: key, Value: value}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}

func (r *SettingsRepository) FindAll(ctx context.Context) ([]domain.SiteSetting, error) {
	var settings []domain.SiteSetting

	if err := r.DB.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}
