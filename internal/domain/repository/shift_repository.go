package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// ShiftRepository defines the interface for shift data access
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error

	// GetOpen returns the shop's open shift regardless of calendar day, or nil.
	GetOpen(ctx context.Context, shopID uuid.UUID) (*entity.Shift, error)

	// MaxShiftNumber returns the highest shift number already used on the
	// given calendar day, 0 when none.
	MaxShiftNumber(ctx context.Context, shopID uuid.UUID, day time.Time) (int, error)

	Update(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Shift, error)
	List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shift, int64, error)
}
