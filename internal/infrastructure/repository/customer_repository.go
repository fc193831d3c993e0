package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	domainRepo "github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		First(&customer, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByName(ctx context.Context, shopID uuid.UUID, name string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		First(&customer, "shop_id = ? AND name = ?", shopID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// IncrementDebt adds amount (satang) to the customer's balance with a single
// guarded UPDATE so concurrent credit sales cannot lose increments.
func (r *customerRepository) IncrementDebt(ctx context.Context, shopID, id uuid.UUID, amount int64) error {
	result := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ? AND shop_id = ?", id, shopID).
		Update("total_debt", gorm.Expr("total_debt + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, shopID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Customer{}, "id = ? AND shop_id = ?", id, shopID).Error
}

func (r *customerRepository) List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("shop_id = ?", shopID)

	if search != "" {
		query = query.Where("name LIKE ? OR phone LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) ListDebtors(ctx context.Context, shopID uuid.UUID) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND total_debt > 0", shopID).
		Order("total_debt DESC").
		Find(&customers).Error
	return customers, err
}
