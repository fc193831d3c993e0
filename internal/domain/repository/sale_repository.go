package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// SaleFilterParams holds filter parameters for listing sales
type SaleFilterParams struct {
	Pagination  *pagination.PaginationParams
	PaymentType string
	From        *time.Time
	To          *time.Time
}

// SaleCursorFilterParams holds filter parameters for cursor-based listing
type SaleCursorFilterParams struct {
	Cursor      *pagination.CursorParams
	PaymentType string
}

// SaleSummary aggregates sales over a half-open time window [From, To).
type SaleSummary struct {
	TotalSales  int64 // satang
	CashSales   int64 // satang
	CreditSales int64 // satang
	SaleCount   int
}

// SaleRepository defines the interface for sale data access.
type SaleRepository interface {
	// CreateWithItems persists the sale, its items, the per-item conditional
	// stock decrements with their OUT movements, and the customer's debt
	// increment for credit sales — all in one transaction. Insufficient stock
	// on any line aborts the whole sale.
	CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error

	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, shopID, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, shopID uuid.UUID, params *SaleFilterParams) ([]entity.Sale, int64, error)
	ListWithCursor(ctx context.Context, shopID uuid.UUID, params *SaleCursorFilterParams) ([]entity.Sale, error)

	// SummarizeWindow recomputes cash/credit/total/count from the sales table
	// over [from, to). Used by shift close and reporting.
	SummarizeWindow(ctx context.Context, shopID uuid.UUID, from, to time.Time) (*SaleSummary, error)
}
