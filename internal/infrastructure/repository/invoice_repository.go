package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	domainRepo "github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/pagination"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new tax invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.TaxInvoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.TaxInvoice, error) {
	var invoice entity.TaxInvoice
	err := r.db.WithContext(ctx).
		First(&invoice, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetBySaleID(ctx context.Context, shopID, saleID uuid.UUID) (*entity.TaxInvoice, error) {
	var invoice entity.TaxInvoice
	err := r.db.WithContext(ctx).
		First(&invoice, "shop_id = ? AND sale_id = ?", shopID, saleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

// LastNumberForYear returns the highest number issued in the year. The
// TAX-{year}-{seq} format zero-pads the sequence to six digits, so
// lexicographic MAX over the prefix is also numeric MAX. Cancelled invoices
// count: their numbers stay burned.
func (r *invoiceRepository) LastNumberForYear(ctx context.Context, shopID uuid.UUID, year int) (string, error) {
	var last *string
	err := r.db.WithContext(ctx).Model(&entity.TaxInvoice{}).
		Select("MAX(invoice_number)").
		Where("shop_id = ? AND invoice_number LIKE ?", shopID, fmt.Sprintf("TAX-%d-%%", year)).
		Scan(&last).Error
	if err != nil {
		return "", err
	}
	if last == nil {
		return "", nil
	}
	return *last, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.TaxInvoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams) ([]entity.TaxInvoice, int64, error) {
	var invoices []entity.TaxInvoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TaxInvoice{}).
		Where("shop_id = ?", shopID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("invoice_number DESC").
		Find(&invoices).Error

	return invoices, total, err
}
