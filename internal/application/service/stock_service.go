package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

// StockService is the write path for stock levels. Every change lands as a
// movement row next to the guarded stock update, so the ledger always
// explains the current number.
type StockService struct {
	stockRepo repository.StockRepository
}

// NewStockService creates a new stock service
func NewStockService(stockRepo repository.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// StockIn records a restock. Quantity must be positive.
func (s *StockService) StockIn(ctx context.Context, shopID, productID uuid.UUID, quantity int, note *string) (*entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, apperror.NewValidationError("Quantity must be positive")
	}
	return s.stockRepo.Adjust(ctx, shopID, productID, quantity, enum.SourcePurchase, note)
}

// Adjust applies a signed correction (damage, recount, loss). Zero deltas are
// rejected: they would write a movement that moved nothing.
func (s *StockService) Adjust(ctx context.Context, shopID, productID uuid.UUID, delta int, note *string) (*entity.StockMovement, error) {
	if delta == 0 {
		return nil, apperror.NewValidationError("Adjustment cannot be zero")
	}
	return s.stockRepo.Adjust(ctx, shopID, productID, delta, enum.SourceAdjust, note)
}

// ListMovements returns the movement history, newest first
func (s *StockService) ListMovements(ctx context.Context, shopID uuid.UUID, params *repository.MovementFilterParams) (*pagination.CursorPaginatedResult[entity.MovementRow], error) {
	if params == nil {
		params = &repository.MovementFilterParams{}
	}
	if params.Cursor == nil {
		params.Cursor = &pagination.CursorParams{}
	}
	params.Cursor.Validate()

	rows, err := s.stockRepo.ListMovements(ctx, shopID, params)
	if err != nil {
		return nil, err
	}

	meta, items := pagination.NewCursorPagination(rows, params.Cursor.Limit,
		func(m entity.MovementRow) string { return m.ID.String() },
		func(m entity.MovementRow) time.Time { return m.CreatedAt })
	return pagination.NewCursorPaginatedResult(items, meta), nil
}
