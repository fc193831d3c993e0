package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// MovementFilterParams holds filter parameters for listing stock movements
type MovementFilterParams struct {
	Cursor    *pagination.CursorParams
	ProductID *uuid.UUID
}

// StockRepository is the only write path for product stock. Adjust applies the
// signed delta and appends the movement row in one transaction: the decrement
// is a conditional update that only fires while stock >= |delta|, so
// concurrent sales cannot race past zero.
type StockRepository interface {
	// Adjust applies delta to the product's stock and records a movement.
	// Returns apperror "Product not found" or "Insufficient stock" when the
	// conditional update matches no row.
	Adjust(ctx context.Context, shopID, productID uuid.UUID, delta int, source enum.MovementSource, note *string) (*entity.StockMovement, error)

	// ListMovements returns movements for the shop, newest first, joined with
	// the product's current name.
	ListMovements(ctx context.Context, shopID uuid.UUID, params *MovementFilterParams) ([]entity.MovementRow, error)
}
