package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// InvoiceRepository defines the interface for tax invoice data access.
// Invoices are never deleted; cancellation is a status flip.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.TaxInvoice) error
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.TaxInvoice, error)
	GetBySaleID(ctx context.Context, shopID, saleID uuid.UUID) (*entity.TaxInvoice, error)

	// LastNumberForYear returns the highest invoice number with the
	// TAX-{year}- prefix for the shop, or "" when the year has none.
	LastNumberForYear(ctx context.Context, shopID uuid.UUID, year int) (string, error)

	Update(ctx context.Context, invoice *entity.TaxInvoice) error
	List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams) ([]entity.TaxInvoice, int64, error)
}
