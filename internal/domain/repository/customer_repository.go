package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Customer, error)
	GetByName(ctx context.Context, shopID uuid.UUID, name string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	IncrementDebt(ctx context.Context, shopID, id uuid.UUID, amount int64) error
	Delete(ctx context.Context, shopID, id uuid.UUID) error
	List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	ListDebtors(ctx context.Context, shopID uuid.UUID) ([]entity.Customer, error)
}
