package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// ProductFilterParams holds filter parameters for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ProductCursorFilterParams holds filter parameters for cursor-based listing
type ProductCursorFilterParams struct {
	Cursor   *pagination.CursorParams
	Search   string
	LowStock bool
}

// ProductRepository defines the interface for product data access. Stock is
// mutated only through StockRepository; Update must never touch it.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, shopID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error)
	GetByBarcode(ctx context.Context, shopID uuid.UUID, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, shopID, id uuid.UUID) error
	List(ctx context.Context, shopID uuid.UUID, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListWithCursor(ctx context.Context, shopID uuid.UUID, params *ProductCursorFilterParams) ([]entity.Product, error)
	GetLowStock(ctx context.Context, shopID uuid.UUID) ([]entity.Product, error)
}
