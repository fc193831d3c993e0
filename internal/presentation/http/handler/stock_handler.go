package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/application/service"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/request"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/response"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// StockHandler handles stock movement endpoints
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// StockIn handles POST /products/:id/stock-in
func (h *StockHandler) StockIn(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.StockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	movement, err := h.stockService.StockIn(c.Request.Context(), *shopID, productID, req.Quantity, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock received", movement)
}

// Adjust handles POST /products/:id/adjust
func (h *StockHandler) Adjust(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	movement, err := h.stockService.Adjust(c.Request.Context(), *shopID, productID, req.Delta, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjusted", movement)
}

// ListMovements handles GET /stock/movements
func (h *StockHandler) ListMovements(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var cursorParams pagination.CursorParams
	if err := c.ShouldBindQuery(&cursorParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	params := &repository.MovementFilterParams{Cursor: &cursorParams}
	if raw := c.Query("product_id"); raw != "" {
		productID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		params.ProductID = &productID
	}

	result, err := h.stockService.ListMovements(c.Request.Context(), *shopID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithCursor(c, 200, "Movements retrieved", result)
}
