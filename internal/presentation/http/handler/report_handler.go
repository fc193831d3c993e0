package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pattarad/rankha-pos/internal/application/service"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Today handles GET /reports/today
func (h *ReportHandler) Today(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	summary, err := h.reportService.GetTodaySummary(c.Request.Context(), *shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Today's summary retrieved", summary)
}

// Daily handles GET /reports/daily?days=7
func (h *ReportHandler) Daily(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	results, err := h.reportService.GetDailySales(c.Request.Context(), *shopID, queryInt(c, "days", 7))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved", results)
}

// Monthly handles GET /reports/monthly?year=2026&month=8
func (h *ReportHandler) Monthly(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	now := time.Now()
	year := queryInt(c, "year", now.Year())
	month := queryInt(c, "month", int(now.Month()))

	result, err := h.reportService.GetMonthlySales(c.Request.Context(), *shopID, year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly sales retrieved", result)
}

// TopProducts handles GET /reports/top-products?limit=5
func (h *ReportHandler) TopProducts(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	results, err := h.reportService.GetTopProducts(c.Request.Context(), *shopID, queryInt(c, "limit", 5))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved", results)
}

// LowStock handles GET /reports/low-stock
func (h *ReportHandler) LowStock(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	products, err := h.reportService.GetLowStock(c.Request.Context(), *shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved", products)
}

// Debtors handles GET /reports/debtors
func (h *ReportHandler) Debtors(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	debtors, err := h.reportService.GetDebtors(c.Request.Context(), *shopID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debtors retrieved", debtors)
}
