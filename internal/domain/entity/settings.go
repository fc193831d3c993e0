package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShopSettings is the per-shop configuration singleton: exactly one row per
// shop (unique index on shop_id), created lazily with defaults on first read,
// updated in place, never deleted.
type ShopSettings struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"shop_id"`

	VatEnabled bool `gorm:"default:false" json:"vat_enabled"`
	VatRate    int  `gorm:"default:7" json:"vat_rate"` // Percent

	SellerName    string `gorm:"size:255" json:"seller_name"`
	SellerAddress string `gorm:"type:text" json:"seller_address"`
	SellerTaxID   string `gorm:"size:20" json:"seller_tax_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *ShopSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopSettings model
func (ShopSettings) TableName() string {
	return "shop_settings"
}

// MissingSellerFields returns the Thai labels of the seller fields that are
// still blank. Invoice issuance requires all three.
func (s *ShopSettings) MissingSellerFields() []string {
	var missing []string
	if s.SellerName == "" {
		missing = append(missing, "ชื่อผู้ขาย (seller name)")
	}
	if s.SellerAddress == "" {
		missing = append(missing, "ที่อยู่ (address)")
	}
	if s.SellerTaxID == "" {
		missing = append(missing, "เลขประจำตัวผู้เสียภาษี (tax ID)")
	}
	return missing
}
