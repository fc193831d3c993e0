package service

import (
	"context"
	"testing"

	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
)

func TestStockInIncreasesStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "น้ำปลาแท้", 35, 10)

	movement, err := env.stock.StockIn(ctx, env.shopID, product.ID, 24, nil)
	if err != nil {
		t.Fatalf("stock in: %v", err)
	}
	if movement.Type != enum.MovementIn || movement.Quantity != 24 || movement.Source != enum.SourcePurchase {
		t.Errorf("movement = %s %d %s, want IN 24 PURCHASE", movement.Type, movement.Quantity, movement.Source)
	}

	got, _ := env.products.GetProduct(ctx, env.shopID, product.ID)
	if got.Stock != 34 {
		t.Errorf("stock = %d, want 34", got.Stock)
	}
}

func TestStockInRejectsNonPositive(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "ซอสหอยนางรม", 42, 5)

	for _, qty := range []int{0, -3} {
		_, err := env.stock.StockIn(context.Background(), env.shopID, product.ID, qty, nil)
		if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 400 {
			t.Errorf("StockIn(%d): err = %v, want validation error", qty, err)
		}
	}
}

func TestAdjustNegativeBeyondStockRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "น้ำส้มสายชู", 18, 4)

	note := "ของแตก"
	if _, err := env.stock.Adjust(ctx, env.shopID, product.ID, -2, &note); err != nil {
		t.Fatalf("adjust -2: %v", err)
	}

	_, err := env.stock.Adjust(ctx, env.shopID, product.ID, -5, nil)
	if !apperror.IsConflict(err) {
		t.Fatalf("adjust below zero: err = %v, want conflict", err)
	}

	got, _ := env.products.GetProduct(ctx, env.shopID, product.ID)
	if got.Stock != 2 {
		t.Errorf("stock = %d, want 2", got.Stock)
	}
}

func TestAdjustZeroRejected(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "พริกแห้ง", 60, 3)

	_, err := env.stock.Adjust(context.Background(), env.shopID, product.ID, 0, nil)
	if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 400 {
		t.Fatalf("zero adjust: err = %v, want validation error", err)
	}
}

func TestAdjustUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.stock.Adjust(context.Background(), env.shopID, env.userID, 1, nil)
	if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 404 {
		t.Fatalf("unknown product: err = %v, want not found", err)
	}
}

func TestListMovementsNewestFirstWithFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createProduct(t, "กะทิกล่อง", 28, 10)
	b := env.createProduct(t, "แป้งสาลี", 32, 10)

	if _, err := env.stock.StockIn(ctx, env.shopID, a.ID, 5, nil); err != nil {
		t.Fatalf("stock in a: %v", err)
	}
	if _, err := env.stock.StockIn(ctx, env.shopID, b.ID, 7, nil); err != nil {
		t.Fatalf("stock in b: %v", err)
	}
	if _, err := env.stock.Adjust(ctx, env.shopID, a.ID, -1, nil); err != nil {
		t.Fatalf("adjust a: %v", err)
	}

	all, err := env.stock.ListMovements(ctx, env.shopID, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("all movements = %d, want 3", len(all.Items))
	}
	if all.Items[0].Type != enum.MovementOut {
		t.Errorf("newest movement = %s, want the OUT adjustment first", all.Items[0].Type)
	}
	if all.Items[0].ProductName != "กะทิกล่อง" {
		t.Errorf("ProductName = %s, want joined current name", all.Items[0].ProductName)
	}

	onlyA, err := env.stock.ListMovements(ctx, env.shopID, &repository.MovementFilterParams{ProductID: &a.ID})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(onlyA.Items) != 2 {
		t.Errorf("filtered movements = %d, want 2", len(onlyA.Items))
	}
}
