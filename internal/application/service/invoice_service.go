package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"github.com/pattarad/rankha-pos/pkg/keylock"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// InvoiceService issues and cancels full tax invoices. Issuance for one shop
// runs under a per-shop lock: the next number is read-then-write, and the
// sequence must stay gapless and collision-free. The unique index on
// (shop_id, invoice_number) backstops the lock.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	locks        *keylock.KeyLock
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	locks *keylock.KeyLock,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		locks:        locks,
	}
}

// IssueInvoiceInput represents the issue invoice input
type IssueInvoiceInput struct {
	UserID       uuid.UUID
	SaleID       uuid.UUID
	BuyerName    string
	BuyerAddress string
	BuyerTaxID   *string
}

// IssueInvoice issues a tax invoice for a VAT-bearing sale. Preconditions are
// checked in a fixed order so clients get a stable first failure: the sale
// must exist, must carry VAT, must not already have an invoice, and the
// shop's seller identity must be complete.
func (s *InvoiceService) IssueInvoice(ctx context.Context, shopID uuid.UUID, input *IssueInvoiceInput) (*entity.TaxInvoice, error) {
	if strings.TrimSpace(input.BuyerName) == "" {
		return nil, apperror.NewValidationError("Buyer name is required")
	}

	sale, err := s.saleRepo.GetByID(ctx, shopID, input.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	if sale.VatAmount == 0 {
		return nil, apperror.NewConflictError("Sale has no VAT; tax invoice cannot be issued")
	}

	existing, err := s.invoiceRepo.GetBySaleID(ctx, shopID, input.SaleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Tax invoice already issued for this sale")
	}

	settings, err := s.settingsRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	var missing []string
	if settings == nil {
		missing = (&entity.ShopSettings{}).MissingSellerFields()
	} else {
		missing = settings.MissingSellerFields()
	}
	if len(missing) > 0 {
		return nil, apperror.NewIncompleteConfigError("Seller information incomplete", missing)
	}

	var invoice *entity.TaxInvoice
	err = s.locks.WithLock("invoice:"+shopID.String(), func() error {
		now := time.Now()
		number, err := s.nextNumber(ctx, shopID, now.Year())
		if err != nil {
			return err
		}

		invoice = &entity.TaxInvoice{
			ShopID:        shopID,
			UserID:        input.UserID,
			SaleID:        sale.ID,
			InvoiceNumber: number,
			Status:        enum.InvoiceIssued,
			SellerName:    settings.SellerName,
			SellerAddress: settings.SellerAddress,
			SellerTaxID:   settings.SellerTaxID,
			BuyerName:     strings.TrimSpace(input.BuyerName),
			BuyerAddress:  strings.TrimSpace(input.BuyerAddress),
			BuyerTaxID:    input.BuyerTaxID,
			Subtotal:      sale.Subtotal,
			VatAmount:     sale.VatAmount,
			TotalWithVat:  sale.TotalWithVat,
			IssuedDate:    now,
		}
		return s.invoiceRepo.Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// nextNumber computes the next TAX-{year}-{seq} number for the shop. The
// sequence restarts at 1 each calendar year and skips nothing: cancelled
// invoices keep their numbers.
func (s *InvoiceService) nextNumber(ctx context.Context, shopID uuid.UUID, year int) (string, error) {
	last, err := s.invoiceRepo.LastNumberForYear(ctx, shopID, year)
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		parts := strings.Split(last, "-")
		n, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return "", fmt.Errorf("malformed invoice number %q: %w", last, err)
		}
		seq = n + 1
	}

	return fmt.Sprintf("TAX-%d-%06d", year, seq), nil
}

// CancelInvoice flips an issued invoice to cancelled. The row and its number
// survive; a cancelled invoice can never be reissued or deleted.
func (s *InvoiceService) CancelInvoice(ctx context.Context, shopID, id uuid.UUID) (*entity.TaxInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Tax invoice")
	}
	if invoice.Status == enum.InvoiceCancelled {
		return nil, apperror.NewConflictError("Tax invoice is already cancelled")
	}

	invoice.Status = enum.InvoiceCancelled
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, shopID, id uuid.UUID) (*entity.TaxInvoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Tax invoice")
	}
	return invoice, nil
}

// GetInvoiceBySale retrieves the invoice issued for a sale, if any
func (s *InvoiceService) GetInvoiceBySale(ctx context.Context, shopID, saleID uuid.UUID) (*entity.TaxInvoice, error) {
	invoice, err := s.invoiceRepo.GetBySaleID(ctx, shopID, saleID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Tax invoice")
	}
	return invoice, nil
}

// ListInvoices returns invoices, highest number first
func (s *InvoiceService) ListInvoices(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.TaxInvoice], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	invoices, total, err := s.invoiceRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(invoices,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
