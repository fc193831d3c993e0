package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	domainRepo "github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/pagination"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

// GetOpen looks for an open shift on any calendar day. A forgotten shift from
// yesterday still blocks opening a new one.
func (r *shiftRepository) GetOpen(ctx context.Context, shopID uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := r.db.WithContext(ctx).
		First(&shift, "shop_id = ? AND status = ?", shopID, enum.ShiftOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

// MaxShiftNumber expects day truncated to midnight; shift_date rows are
// stored the same way, so equality comparison is exact.
func (r *shiftRepository) MaxShiftNumber(ctx context.Context, shopID uuid.UUID, day time.Time) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&entity.Shift{}).
		Select("MAX(shift_number)").
		Where("shop_id = ? AND shift_date = ?", shopID, day).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *shiftRepository) Update(ctx context.Context, shift *entity.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Shift, error) {
	var shift entity.Shift
	err := r.db.WithContext(ctx).
		First(&shift, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams) ([]entity.Shift, int64, error) {
	var shifts []entity.Shift
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Shift{}).
		Where("shop_id = ?", shopID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("start_time DESC").
		Find(&shifts).Error

	return shifts, total, err
}
