package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// TaxInvoice is a full tax invoice for a VAT-bearing sale. At most one per
// sale; the number is sequential per shop per calendar year and is never
// reused, even after cancellation. Seller identity and the sale's VAT figures
// are snapshots taken at issue time — later edits to settings or the sale must
// not change an issued invoice. Rows carry no soft delete: tax documents are
// retained permanently.
type TaxInvoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ShopID        uuid.UUID          `gorm:"type:uuid;not null;index:idx_invoice_shop_number,unique" json:"shop_id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	SaleID        uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"sale_id"`
	InvoiceNumber string             `gorm:"size:20;not null;index:idx_invoice_shop_number,unique" json:"invoice_number"`
	Status        enum.InvoiceStatus `gorm:"default:0" json:"status"`

	SellerName    string `gorm:"size:255;not null" json:"seller_name"`
	SellerAddress string `gorm:"type:text;not null" json:"seller_address"`
	SellerTaxID   string `gorm:"size:20;not null" json:"seller_tax_id"`

	BuyerName    string  `gorm:"size:255;not null" json:"buyer_name"`
	BuyerAddress string  `gorm:"type:text" json:"buyer_address"`
	BuyerTaxID   *string `gorm:"size:20" json:"buyer_tax_id,omitempty"`

	Subtotal     int64 `gorm:"not null" json:"-"` // Stored in satang
	VatAmount    int64 `gorm:"not null" json:"-"` // Stored in satang
	TotalWithVat int64 `gorm:"not null" json:"-"` // Stored in satang

	IssuedDate time.Time `gorm:"not null" json:"issued_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON converts satang fields to baht for API responses
func (i TaxInvoice) MarshalJSON() ([]byte, error) {
	type Alias TaxInvoice
	return json.Marshal(&struct {
		Alias
		Subtotal     float64 `json:"subtotal"`
		VatAmount    float64 `json:"vat_amount"`
		TotalWithVat float64 `json:"total_with_vat"`
	}{
		Alias:        Alias(i),
		Subtotal:     float64(i.Subtotal) / 100,
		VatAmount:    float64(i.VatAmount) / 100,
		TotalWithVat: float64(i.TotalWithVat) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *TaxInvoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TaxInvoice model
func (TaxInvoice) TableName() string {
	return "tax_invoices"
}
