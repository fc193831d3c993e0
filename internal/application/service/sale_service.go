package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// SaleService handles sale creation and retrieval
type SaleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
	}
}

// SaleItemInput represents one line of a sale request
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	UserID      uuid.UUID
	CustomerID  *uuid.UUID
	PaymentType enum.PaymentType
	Items       []SaleItemInput
}

// CreateSale validates the request, prices the lines from the current
// catalog, extracts VAT when the shop has it enabled, and hands everything to
// the repository as a single transaction. Prices are VAT-inclusive: the tax
// is carved out of the total, never added on top.
func (s *SaleService) CreateSale(ctx context.Context, shopID uuid.UUID, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("Sale must have at least one item")
	}
	if !input.PaymentType.Valid() {
		return nil, apperror.NewValidationError("Payment type must be cash or credit")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewValidationError("Item quantity must be positive")
		}
	}

	if input.PaymentType == enum.PaymentCredit {
		if input.CustomerID == nil {
			return nil, apperror.NewValidationError("Credit sale requires a customer")
		}
		customer, err := s.customerRepo.GetByID(ctx, shopID, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	// Batch fetch all products in one query
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, shopID, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var total int64
	items := make([]entity.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		lineTotal := product.Price * int64(item.Quantity)
		total += lineTotal

		items = append(items, entity.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			TotalPrice:  lineTotal,
		})
	}

	// VAT extraction: vat = total * rate / (100 + rate), rounded to the
	// nearest satang. Disabled shops record a zero rate.
	vatRate := 0
	var vatAmount int64
	settings, err := s.settingsRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if settings != nil && settings.VatEnabled {
		vatRate = settings.VatRate
		vatAmount = (total*int64(vatRate)*2 + int64(100+vatRate)) / (2 * int64(100+vatRate))
	}

	sale := &entity.Sale{
		ShopID:       shopID,
		UserID:       input.UserID,
		CustomerID:   input.CustomerID,
		PaymentType:  input.PaymentType,
		TotalAmount:  total,
		Subtotal:     total - vatAmount,
		VatRate:      vatRate,
		VatAmount:    vatAmount,
		TotalWithVat: total,
	}

	if err := s.saleRepo.CreateWithItems(ctx, sale, items); err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, shopID, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns sales with page-based pagination
func (s *SaleService) ListSales(ctx context.Context, shopID uuid.UUID, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	sales, total, err := s.saleRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(sales,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// ListSalesWithCursor returns sales with cursor-based pagination
func (s *SaleService) ListSalesWithCursor(ctx context.Context, shopID uuid.UUID, params *repository.SaleCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Sale], error) {
	if params.Cursor == nil {
		params.Cursor = &pagination.CursorParams{}
	}
	params.Cursor.Validate()

	sales, err := s.saleRepo.ListWithCursor(ctx, shopID, params)
	if err != nil {
		return nil, err
	}

	meta, items := pagination.NewCursorPagination(sales, params.Cursor.Limit,
		func(sl entity.Sale) string { return sl.ID.String() },
		func(sl entity.Sale) time.Time { return sl.CreatedAt })
	return pagination.NewCursorPaginatedResult(items, meta), nil
}
