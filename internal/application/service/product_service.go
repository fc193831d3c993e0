package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// ProductService handles catalog operations. Stock changes are not part of
// this service; they go through StockService only.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name         string
	Barcode      *string
	Price        float64
	Stock        int
	ReorderPoint *int
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name         *string
	Barcode      *string
	Price        *float64
	ReorderPoint *int
}

// CreateProduct creates a new catalog entry. Initial stock is set directly;
// it predates the ledger, so no movement row is written for it.
func (s *ProductService) CreateProduct(ctx context.Context, shopID uuid.UUID, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError("Product name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewValidationError("Price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, apperror.NewValidationError("Stock cannot be negative")
	}

	product := &entity.Product{
		ShopID:       shopID,
		Name:         name,
		Barcode:      input.Barcode,
		Price:        int64(input.Price*100 + 0.5),
		Stock:        input.Stock,
		ReorderPoint: 5,
	}
	if input.ReorderPoint != nil {
		if *input.ReorderPoint < 0 {
			return nil, apperror.NewValidationError("Reorder point cannot be negative")
		}
		product.ReorderPoint = *input.ReorderPoint
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, shopID, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByBarcode retrieves a product by barcode (for scanner lookups)
func (s *ProductService) GetProductByBarcode(ctx context.Context, shopID uuid.UUID, barcode string) (*entity.Product, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, apperror.NewValidationError("Barcode is required")
	}
	product, err := s.productRepo.GetByBarcode(ctx, shopID, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct updates catalog fields only; stock never changes here.
func (s *ProductService) UpdateProduct(ctx context.Context, shopID, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError("Product name cannot be empty")
		}
		product.Name = name
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError("Price cannot be negative")
		}
		product.Price = int64(*input.Price*100 + 0.5)
	}
	if input.ReorderPoint != nil {
		if *input.ReorderPoint < 0 {
			return nil, apperror.NewValidationError("Reorder point cannot be negative")
		}
		product.ReorderPoint = *input.ReorderPoint
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product permanently. Movement history for the
// product stays in the ledger.
func (s *ProductService) DeleteProduct(ctx context.Context, shopID, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, shopID, id)
}

// ListProducts returns products with page-based pagination
func (s *ProductService) ListProducts(ctx context.Context, shopID uuid.UUID, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	products, total, err := s.productRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// ListProductsWithCursor returns products with cursor-based pagination
func (s *ProductService) ListProductsWithCursor(ctx context.Context, shopID uuid.UUID, params *repository.ProductCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Product], error) {
	if params.Cursor == nil {
		params.Cursor = &pagination.CursorParams{}
	}
	params.Cursor.Validate()

	products, err := s.productRepo.ListWithCursor(ctx, shopID, params)
	if err != nil {
		return nil, err
	}

	meta, items := pagination.NewCursorPagination(products, params.Cursor.Limit,
		func(p entity.Product) string { return p.ID.String() },
		func(p entity.Product) time.Time { return p.CreatedAt })
	return pagination.NewCursorPaginatedResult(items, meta), nil
}

// GetLowStockProducts returns products at or below their reorder point
func (s *ProductService) GetLowStockProducts(ctx context.Context, shopID uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, shopID)
}
