package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is one catalog entry. Stock is never written directly outside the
// stock-adjustment path; every change goes through a conditional update paired
// with a StockMovement row. Deletes are hard deletes — the catalog keeps no
// archive, though movements for the product remain in the ledger.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"shop_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Barcode      *string        `gorm:"size:100;index" json:"barcode,omitempty"`
	Price        int64          `gorm:"default:0" json:"-"` // Stored in satang
	Stock        int            `gorm:"default:0" json:"stock"`
	ReorderPoint int            `gorm:"default:5" json:"reorder_point"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price in baht (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a baht value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}

// IsLowStock reports whether stock has fallen to or below the reorder point.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.ReorderPoint
}

// MarshalJSON converts Product to JSON with the price in baht
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price    float64 `json:"price"`
		LowStock bool    `json:"low_stock"`
	}{
		Alias:    Alias(p),
		Price:    p.GetPriceDecimal(),
		LowStock: p.IsLowStock(),
	})
}
