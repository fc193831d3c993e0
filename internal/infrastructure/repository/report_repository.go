package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	domainRepo "github.com/pattarad/rankha-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// GetDailySales aggregates the last N days of sales by calendar day
func (r *reportRepository) GetDailySales(ctx context.Context, shopID uuid.UUID, days int) ([]domainRepo.DailySalesResult, error) {
	since := time.Now().AddDate(0, 0, -days)

	var rows []struct {
		Day       string
		Total     int64
		SaleCount int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(created_at) AS day,
			COALESCE(SUM(total_with_vat), 0) AS total,
			COUNT(*) AS sale_count
		FROM sales
		WHERE shop_id = ? AND created_at >= ?
		GROUP BY DATE(created_at)
		ORDER BY day DESC
	`, shopID, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.DailySalesResult, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.Day)
		if err != nil {
			continue
		}
		results = append(results, domainRepo.DailySalesResult{
			Date:      date,
			Total:     float64(row.Total) / 100,
			SaleCount: row.SaleCount,
		})
	}
	return results, nil
}

// GetMonthlySales aggregates one calendar month
func (r *reportRepository) GetMonthlySales(ctx context.Context, shopID uuid.UUID, year int, month time.Month) (*domainRepo.MonthlySalesResult, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	var row struct {
		Total     int64
		SaleCount int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_with_vat), 0) AS total,
			COUNT(*) AS sale_count
		FROM sales
		WHERE shop_id = ? AND created_at >= ? AND created_at < ?
	`, shopID, from, to).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.MonthlySalesResult{
		Year:      year,
		Month:     int(month),
		Total:     float64(row.Total) / 100,
		SaleCount: row.SaleCount,
	}, nil
}

// GetTopProducts ranks products by quantity sold, all time
func (r *reportRepository) GetTopProducts(ctx context.Context, shopID uuid.UUID, limit int) ([]domainRepo.TopProductResult, error) {
	if limit < 1 {
		limit = 5
	}

	var rows []struct {
		ProductID    uuid.UUID
		ProductName  string
		QuantitySold int64
		Revenue      int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			si.product_id AS product_id,
			si.product_name AS product_name,
			SUM(si.quantity) AS quantity_sold,
			SUM(si.total_price) AS revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.shop_id = ?
		GROUP BY si.product_id, si.product_name
		ORDER BY quantity_sold DESC
		LIMIT ?
	`, shopID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]domainRepo.TopProductResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, domainRepo.TopProductResult{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			QuantitySold: row.QuantitySold,
			Revenue:      float64(row.Revenue) / 100,
		})
	}
	return results, nil
}
