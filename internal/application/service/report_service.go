package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
)

// ReportService produces read-only sales summaries
type ReportService struct {
	reportRepo   repository.ReportRepository
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// TodaySummary is the dashboard's headline block
type TodaySummary struct {
	Date        time.Time `json:"date"`
	TotalSales  float64   `json:"total_sales"`
	CashSales   float64   `json:"cash_sales"`
	CreditSales float64   `json:"credit_sales"`
	SaleCount   int       `json:"sale_count"`
}

// GetTodaySummary aggregates today's sales from midnight to now
func (s *ReportService) GetTodaySummary(ctx context.Context, shopID uuid.UUID) (*TodaySummary, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := s.saleRepo.SummarizeWindow(ctx, shopID, midnight, now)
	if err != nil {
		return nil, err
	}

	return &TodaySummary{
		Date:        midnight,
		TotalSales:  float64(summary.TotalSales) / 100,
		CashSales:   float64(summary.CashSales) / 100,
		CreditSales: float64(summary.CreditSales) / 100,
		SaleCount:   summary.SaleCount,
	}, nil
}

// GetDailySales returns per-day sales for the last N days (default 7, max 90)
func (s *ReportService) GetDailySales(ctx context.Context, shopID uuid.UUID, days int) ([]repository.DailySalesResult, error) {
	if days < 1 {
		days = 7
	}
	if days > 90 {
		days = 90
	}
	return s.reportRepo.GetDailySales(ctx, shopID, days)
}

// GetMonthlySales returns one calendar month's totals
func (s *ReportService) GetMonthlySales(ctx context.Context, shopID uuid.UUID, year, month int) (*repository.MonthlySalesResult, error) {
	if month < 1 || month > 12 {
		return nil, apperror.NewValidationError("Month must be between 1 and 12")
	}
	if year < 2000 || year > 2200 {
		return nil, apperror.NewValidationError("Year out of range")
	}
	return s.reportRepo.GetMonthlySales(ctx, shopID, year, time.Month(month))
}

// GetTopProducts returns the best sellers by quantity (default 5, max 50)
func (s *ReportService) GetTopProducts(ctx context.Context, shopID uuid.UUID, limit int) ([]repository.TopProductResult, error) {
	if limit < 1 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}
	return s.reportRepo.GetTopProducts(ctx, shopID, limit)
}

// GetLowStock returns products at or below their reorder point
func (s *ReportService) GetLowStock(ctx context.Context, shopID uuid.UUID) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx, shopID)
}

// GetDebtors returns customers with outstanding debt
func (s *ReportService) GetDebtors(ctx context.Context, shopID uuid.UUID) ([]entity.Customer, error) {
	return s.customerRepo.ListDebtors(ctx, shopID)
}
