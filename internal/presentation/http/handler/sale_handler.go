package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pattarad/rankha-pos/internal/application/service"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/request"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/response"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// SaleHandler handles sale endpoints
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles POST /sales
func (h *SaleHandler) Create(c *gin.Context) {
	shopID := GetShopID(c)
	userID := GetUserID(c)
	if shopID == nil || userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	items := make([]service.SaleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), *shopID, &service.CreateSaleInput{
		UserID:      *userID,
		CustomerID:  req.CustomerID,
		PaymentType: enum.PaymentType(req.PaymentType),
		Items:       items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded", sale)
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), *shopID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved", sale)
}

// List handles GET /sales
func (h *SaleHandler) List(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if c.Query("cursor") != "" || c.Query("limit") != "" {
		var cursorParams pagination.CursorParams
		if err := c.ShouldBindQuery(&cursorParams); err != nil {
			response.BadRequest(c, "Invalid pagination parameters")
			return
		}
		result, err := h.saleService.ListSalesWithCursor(c.Request.Context(), *shopID, &repository.SaleCursorFilterParams{
			Cursor:      &cursorParams,
			PaymentType: c.Query("payment_type"),
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		response.SuccessWithCursor(c, 200, "Sales retrieved", result)
		return
	}

	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.saleService.ListSales(c.Request.Context(), *shopID, &repository.SaleFilterParams{
		Pagination:  &pageParams,
		PaymentType: c.Query("payment_type"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved", result)
}
