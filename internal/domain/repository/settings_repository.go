package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
)

// SettingsRepository defines the interface for shop settings data access
type SettingsRepository interface {
	GetByShopID(ctx context.Context, shopID uuid.UUID) (*entity.ShopSettings, error)
	Create(ctx context.Context, settings *entity.ShopSettings) error
	Update(ctx context.Context, settings *entity.ShopSettings) error
}
