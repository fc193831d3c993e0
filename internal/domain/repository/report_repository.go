package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailySalesResult holds sales figures for one day
type DailySalesResult struct {
	Date      time.Time `json:"date"`
	Total     float64   `json:"total"`
	SaleCount int64     `json:"sale_count"`
}

// TopProductResult holds aggregated sales for one product
type TopProductResult struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	QuantitySold int64     `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
}

// MonthlySalesResult holds sales figures for one calendar month
type MonthlySalesResult struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Total     float64 `json:"total"`
	SaleCount int64   `json:"sale_count"`
}

// ReportRepository aggregates sales data. Read-only.
type ReportRepository interface {
	GetDailySales(ctx context.Context, shopID uuid.UUID, days int) ([]DailySalesResult, error)
	GetMonthlySales(ctx context.Context, shopID uuid.UUID, year int, month time.Month) (*MonthlySalesResult, error)
	GetTopProducts(ctx context.Context, shopID uuid.UUID, limit int) ([]TopProductResult, error)
}
