package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"gorm.io/gorm"
)

// StockMovement is one row of the append-only stock audit trail. Rows are
// never updated or deleted; quantity is always the positive magnitude and the
// type carries the direction.
type StockMovement struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ShopID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"shop_id"`
	ProductID uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	Type      enum.MovementType   `gorm:"size:10;not null" json:"type"`
	Quantity  int                 `gorm:"not null" json:"quantity"`
	Source    enum.MovementSource `gorm:"size:20;not null" json:"source"`
	Note      *string             `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time           `gorm:"index" json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}

// SignedDelta returns the movement as a signed stock delta.
func (m *StockMovement) SignedDelta() int {
	if m.Type == enum.MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}

// MovementRow is a movement joined with the product's current name at read
// time. Names are looked up from the live catalog rather than snapshotted, so
// a rename changes how history displays.
type MovementRow struct {
	ID          uuid.UUID           `json:"id"`
	ProductID   uuid.UUID           `json:"product_id"`
	ProductName string              `json:"product_name"`
	Type        enum.MovementType   `json:"type"`
	Quantity    int                 `json:"quantity"`
	Source      enum.MovementSource `json:"source"`
	Note        *string             `json:"note,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
