package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
)

// SettingsService manages the per-shop settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	VatEnabled    *bool
	VatRate       *int
	SellerName    *string
	SellerAddress *string
	SellerTaxID   *string
}

// GetSettings returns the shop's settings, creating the row with defaults on
// first read. There is never more than one row per shop.
func (s *SettingsService) GetSettings(ctx context.Context, shopID uuid.UUID) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.ShopSettings{
		ShopID:  shopID,
		VatRate: 7,
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies a partial update. Only provided fields change.
func (s *SettingsService) UpdateSettings(ctx context.Context, shopID uuid.UUID, input *UpdateSettingsInput) (*entity.ShopSettings, error) {
	settings, err := s.GetSettings(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if input.VatEnabled != nil {
		settings.VatEnabled = *input.VatEnabled
	}
	if input.VatRate != nil {
		if *input.VatRate < 0 || *input.VatRate > 100 {
			return nil, apperror.NewValidationError("VAT rate must be between 0 and 100")
		}
		settings.VatRate = *input.VatRate
	}
	if input.SellerName != nil {
		settings.SellerName = strings.TrimSpace(*input.SellerName)
	}
	if input.SellerAddress != nil {
		settings.SellerAddress = strings.TrimSpace(*input.SellerAddress)
	}
	if input.SellerTaxID != nil {
		taxID := strings.TrimSpace(*input.SellerTaxID)
		if taxID != "" && len(taxID) != 13 {
			return nil, apperror.NewValidationError("Tax ID must be 13 digits")
		}
		settings.SellerTaxID = taxID
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
