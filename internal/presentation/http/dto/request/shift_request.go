package request

import "github.com/google/uuid"

// OpenShiftRequest is the open shift payload. Cash amounts are in baht.
type OpenShiftRequest struct {
	OpeningCash float64 `json:"opening_cash" binding:"min=0"`
	Notes       *string `json:"notes"`
}

// CloseShiftRequest is the close shift payload
type CloseShiftRequest struct {
	ActualCash float64 `json:"actual_cash" binding:"min=0"`
	Notes      *string `json:"notes"`
}

// IssueInvoiceRequest is the tax invoice issuance payload
type IssueInvoiceRequest struct {
	SaleID       uuid.UUID `json:"sale_id" binding:"required"`
	BuyerName    string    `json:"buyer_name" binding:"required"`
	BuyerAddress string    `json:"buyer_address"`
	BuyerTaxID   *string   `json:"buyer_tax_id"`
}

// UpdateSettingsRequest is the partial settings update payload
type UpdateSettingsRequest struct {
	VatEnabled    *bool   `json:"vat_enabled"`
	VatRate       *int    `json:"vat_rate"`
	SellerName    *string `json:"seller_name"`
	SellerAddress *string `json:"seller_address"`
	SellerTaxID   *string `json:"seller_tax_id"`
}

// AssistantRequest is the chat payload
type AssistantRequest struct {
	Question string `json:"question" binding:"required"`
}
