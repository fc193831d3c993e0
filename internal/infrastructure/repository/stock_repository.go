package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/internal/domain/entity"
	"github.com/pattarad/rankha-pos/internal/domain/enum"
	domainRepo "github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"gorm.io/gorm"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

// adjustStockTx applies a signed stock delta and appends the movement row
// inside the caller's transaction. Decrements are guarded in the WHERE clause:
// UPDATE products SET stock = stock + delta WHERE id = ? AND stock >= -delta.
// A decrement that matches no row means either a missing product or
// insufficient stock; a follow-up existence check tells the two apart.
// Sales reuse this helper so line decrements share the sale's transaction.
func adjustStockTx(tx *gorm.DB, shopID, productID uuid.UUID, delta int, source enum.MovementSource, note *string) (*entity.StockMovement, error) {
	query := tx.Model(&entity.Product{}).
		Where("id = ? AND shop_id = ?", productID, shopID)
	if delta < 0 {
		query = query.Where("stock >= ?", -delta)
	}

	result := query.Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&entity.Product{}).
			Where("id = ? AND shop_id = ?", productID, shopID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, apperror.NewNotFoundError("Product")
		}
		return nil, apperror.NewConflictError("Insufficient stock")
	}

	movement := &entity.StockMovement{
		ShopID:    shopID,
		ProductID: productID,
		Type:      enum.MovementIn,
		Quantity:  delta,
		Source:    source,
		Note:      note,
	}
	if delta < 0 {
		movement.Type = enum.MovementOut
		movement.Quantity = -delta
	}

	if err := tx.Create(movement).Error; err != nil {
		return nil, err
	}
	return movement, nil
}

func (r *stockRepository) Adjust(ctx context.Context, shopID, productID uuid.UUID, delta int, source enum.MovementSource, note *string) (*entity.StockMovement, error) {
	var movement *entity.StockMovement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		movement, err = adjustStockTx(tx, shopID, productID, delta, source, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

func (r *stockRepository) ListMovements(ctx context.Context, shopID uuid.UUID, params *domainRepo.MovementFilterParams) ([]entity.MovementRow, error) {
	params.Cursor.Validate()

	query := r.db.WithContext(ctx).Model(&entity.StockMovement{}).
		Select("stock_movements.id, stock_movements.product_id, COALESCE(products.name, '') AS product_name, stock_movements.type, stock_movements.quantity, stock_movements.source, stock_movements.note, stock_movements.created_at").
		Joins("LEFT JOIN products ON products.id = stock_movements.product_id").
		Where("stock_movements.shop_id = ?", shopID)

	if params.ProductID != nil {
		query = query.Where("stock_movements.product_id = ?", *params.ProductID)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where("(stock_movements.created_at, stock_movements.id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []entity.MovementRow
	err = query.Limit(params.Cursor.Limit + 1).
		Order("stock_movements.created_at DESC, stock_movements.id DESC").
		Scan(&rows).Error

	return rows, err
}
