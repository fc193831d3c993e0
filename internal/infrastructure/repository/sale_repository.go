package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	domainRepo "github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// CreateWithItems persists the sale and everything it implies in one
// transaction: the sale row, its items, a guarded stock decrement plus OUT
// movement per line, and the customer's debt increment for credit sales.
// Insufficient stock on any line rolls the whole sale back, so a sale either
// fully happens or leaves no trace.
func (r *saleRepository) CreateWithItems(ctx context.Context, sale *entity.Sale, items []entity.SaleItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		note := "sale:" + sale.ID.String()
		for i := range items {
			items[i].SaleID = sale.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
			if _, err := adjustStockTx(tx, sale.ShopID, items[i].ProductID,
				-items[i].Quantity, enum.SourceSale, &note); err != nil {
				return err
			}
		}

		if sale.PaymentType == enum.PaymentCredit {
			if sale.CustomerID == nil {
				return apperror.NewValidationError("Credit sale requires a customer")
			}
			result := tx.Model(&entity.Customer{}).
				Where("id = ? AND shop_id = ?", *sale.CustomerID, sale.ShopID).
				Update("total_debt", gorm.Expr("total_debt + ?", sale.TotalWithVat))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperror.NewNotFoundError("Customer")
			}
		}

		sale.Items = items
		return nil
	})
}

func (r *saleRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		First(&sale, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, shopID, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Customer").
		First(&sale, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, shopID uuid.UUID, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("shop_id = ?", shopID)

	if params.PaymentType != "" {
		query = query.Where("payment_type = ?", params.PaymentType)
	}
	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

// ListWithCursor returns sales using cursor-based pagination, newest first
func (r *saleRepository) ListWithCursor(ctx context.Context, shopID uuid.UUID, params *domainRepo.SaleCursorFilterParams) ([]entity.Sale, error) {
	var sales []entity.Sale

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("shop_id = ?", shopID)

	if params.PaymentType != "" {
		query = query.Where("payment_type = ?", params.PaymentType)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&sales).Error

	return sales, err
}

func (r *saleRepository) SummarizeWindow(ctx context.Context, shopID uuid.UUID, from, to time.Time) (*domainRepo.SaleSummary, error) {
	var row struct {
		TotalSales  int64
		CashSales   int64
		CreditSales int64
		SaleCount   int
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_with_vat), 0) AS total_sales,
			COALESCE(SUM(CASE WHEN payment_type = 'cash' THEN total_with_vat ELSE 0 END), 0) AS cash_sales,
			COALESCE(SUM(CASE WHEN payment_type = 'credit' THEN total_with_vat ELSE 0 END), 0) AS credit_sales,
			COUNT(*) AS sale_count
		FROM sales
		WHERE shop_id = ? AND created_at >= ? AND created_at < ?
	`, shopID, from, to).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.SaleSummary{
		TotalSales:  row.TotalSales,
		CashSales:   row.CashSales,
		CreditSales: row.CreditSales,
		SaleCount:   row.SaleCount,
	}, nil
}
