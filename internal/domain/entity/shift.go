package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// Shift is one cash-drawer work period. ShiftNumber restarts at 1 each
// calendar day; at most one shift per shop may be open at any time, even
// across day boundaries. Sales figures are recomputed from the sales table at
// close time, never kept as running counters.
type Shift struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ShopID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"shop_id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ShiftNumber int              `gorm:"not null" json:"shift_number"`
	ShiftDate   time.Time        `gorm:"type:date;not null;index" json:"shift_date"`
	StartTime   time.Time        `gorm:"not null" json:"start_time"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	Status      enum.ShiftStatus `gorm:"default:0;index" json:"status"`

	OpeningCash    int64  `gorm:"default:0" json:"-"` // Stored in satang
	ClosingCash    *int64 `json:"-"`                  // Stored in satang, nil until closed
	ExpectedCash   int64  `gorm:"default:0" json:"-"` // Stored in satang
	ActualCash     *int64 `json:"-"`                  // Stored in satang, nil until closed
	CashDifference int64  `gorm:"default:0" json:"-"` // Signed satang; positive = surplus

	TotalSales  int64 `gorm:"default:0" json:"-"` // Stored in satang
	CashSales   int64 `gorm:"default:0" json:"-"` // Stored in satang
	CreditSales int64 `gorm:"default:0" json:"-"` // Stored in satang
	SaleCount   int   `gorm:"default:0" json:"sale_count"`

	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Relationships
	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON converts satang fields to baht for API responses
func (s Shift) MarshalJSON() ([]byte, error) {
	type Alias Shift
	out := &struct {
		Alias
		OpeningCash    float64  `json:"opening_cash"`
		ClosingCash    *float64 `json:"closing_cash,omitempty"`
		ExpectedCash   float64  `json:"expected_cash"`
		ActualCash     *float64 `json:"actual_cash,omitempty"`
		CashDifference float64  `json:"cash_difference"`
		TotalSales     float64  `json:"total_sales"`
		CashSales      float64  `json:"cash_sales"`
		CreditSales    float64  `json:"credit_sales"`
	}{
		Alias:          Alias(s),
		OpeningCash:    float64(s.OpeningCash) / 100,
		ExpectedCash:   float64(s.ExpectedCash) / 100,
		CashDifference: float64(s.CashDifference) / 100,
		TotalSales:     float64(s.TotalSales) / 100,
		CashSales:      float64(s.CashSales) / 100,
		CreditSales:    float64(s.CreditSales) / 100,
	}
	if s.ClosingCash != nil {
		v := float64(*s.ClosingCash) / 100
		out.ClosingCash = &v
	}
	if s.ActualCash != nil {
		v := float64(*s.ActualCash) / 100
		out.ActualCash = &v
	}
	return json.Marshal(out)
}

// BeforeCreate generates a UUID before creating a new shift
func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shift model
func (Shift) TableName() string {
	return "shifts"
}
