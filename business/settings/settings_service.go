package settings

import (
	"context"
	"errors"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// SettingsRepository contract interface
type SettingsRepository interface {
	Get(ctx context.Context, key, defaultValue string) string
	Set(ctx context.Context, key, value string) error
}

type SiteSettings struct {
	SiteDescription string `json:"site_description"`
	SenderEmail     string `json:"sender_email"`
}

type settingsService struct {
	settingsRepo SettingsRepository
	validate     *validator.Validate
}

func NewSettingsService(settingsRepo SettingsRepository, validate *validator.Validate) *settingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		validate:     validate,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) SiteSettings {
	return SiteSettings{
		SiteDescription: s.settingsRepo.Get(ctx, domain.SettingSiteDescription, domain.DefaultSiteDescription),
		SenderEmail:     s.settingsRepo.Get(ctx, domain.SettingSenderEmail, domain.DefaultSenderEmail),
	}
}

func (s *settingsService) GetSiteDescription(ctx context.Context) string {
	return s.settingsRepo.Get(ctx, domain.SettingSiteDescription, domain.DefaultSiteDescription)
}

func (s *settingsService) UpdateSettings(ctx context.Context, update SiteSettings) error {
	if update.SiteDescription == "" {
		return errors.New("site description is required")
	}

	if err := s.validate.Var(update.SenderEmail, "required,email"); err != nil {
		logger.Error("Invalid sender email", err)
		return errors.New("invalid sender email")
	}

	if err := s.settingsRepo.Set(ctx, domain.SettingSiteDescription, update.SiteDescription); err != nil {
		logger.Error("Failed to update site description", err)
		return err
	}

	if err := s.settingsRepo.Set(ctx, domain.SettingSenderEmail, update.SenderEmail); err != nil {
		logger.Error("Failed to update sender email", err)
		return err
	}

	return nil
}
