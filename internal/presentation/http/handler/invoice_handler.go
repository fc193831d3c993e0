package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pattarad/rankha-pos/internal/application/service"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/request"
	"github.com/pattarad/rankha-pos/internal/presentation/http/dto/response"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// InvoiceHandler handles tax invoice endpoints
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Issue handles POST /invoices
func (h *InvoiceHandler) Issue(c *gin.Context) {
	shopID := GetShopID(c)
	userID := GetUserID(c)
	if shopID == nil || userID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req request.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.IssueInvoice(c.Request.Context(), *shopID, &service.IssueInvoiceInput{
		UserID:       *userID,
		SaleID:       req.SaleID,
		BuyerName:    req.BuyerName,
		BuyerAddress: req.BuyerAddress,
		BuyerTaxID:   req.BuyerTaxID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Tax invoice issued", invoice)
}

// Cancel handles POST /invoices/:id/cancel
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.CancelInvoice(c.Request.Context(), *shopID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax invoice cancelled", invoice)
}

// Get handles GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), *shopID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax invoice retrieved", invoice)
}

// GetBySale handles GET /invoices/by-sale/:saleId
func (h *InvoiceHandler) GetBySale(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}
	saleID, ok := parseIDParam(c, "saleId")
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoiceBySale(c.Request.Context(), *shopID, saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax invoice retrieved", invoice)
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	shopID := GetShopID(c)
	if shopID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), *shopID, &pageParams)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Tax invoices retrieved", result)
}
