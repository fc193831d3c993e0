package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale is one completed transaction. Immutable after creation; cancellation is
// only modeled for tax invoices, never for the sale itself.
type Sale struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ShopID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"shop_id"`
	UserID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	PaymentType enum.PaymentType `gorm:"size:20;not null" json:"payment_type"`

	// TotalAmount predates the VAT-aware fields and is kept populated for
	// backward compatibility with older consumers.
	TotalAmount  int64 `gorm:"default:0" json:"-"` // Stored in satang
	Subtotal     int64 `gorm:"default:0" json:"-"` // Stored in satang
	VatRate      int   `gorm:"default:0" json:"vat_rate"`
	VatAmount    int64 `gorm:"default:0" json:"-"` // Stored in satang
	TotalWithVat int64 `gorm:"default:0" json:"-"` // Stored in satang

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Relationships
	Shop     Shop       `gorm:"foreignKey:ShopID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON converts satang fields to baht for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalAmount  float64 `json:"total_amount"`
		Subtotal     float64 `json:"subtotal"`
		VatAmount    float64 `json:"vat_amount"`
		TotalWithVat float64 `json:"total_with_vat"`
	}{
		Alias:        Alias(s),
		TotalAmount:  float64(s.TotalAmount) / 100,
		Subtotal:     float64(s.Subtotal) / 100,
		VatAmount:    float64(s.VatAmount) / 100,
		TotalWithVat: float64(s.TotalWithVat) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale. ProductName and UnitPrice are snapshots
// taken at sale time, decoupled from later catalog edits.
type SaleItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"-"` // Stored in satang
	TotalPrice  int64     `gorm:"not null" json:"-"` // Stored in satang
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// MarshalJSON converts satang fields to baht for API responses
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice  float64 `json:"unit_price"`
		TotalPrice float64 `json:"total_price"`
	}{
		Alias:      Alias(i),
		UnitPrice:  float64(i.UnitPrice) / 100,
		TotalPrice: float64(i.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
