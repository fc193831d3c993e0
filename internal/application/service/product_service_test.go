package service

import (
	"context"
	"testing"

	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
	"github.com/pattarad/rankha-pos/pkg/pagination"
)

func TestCreateProductStoresPriceInSatang(t *testing.T) {
	env := newTestEnv(t)

	product := env.createProduct(t, "น้ำตาลทราย", 26.50, 12)
	if product.Price != 2650 {
		t.Errorf("Price = %d satang, want 2650", product.Price)
	}
	if product.ReorderPoint != 5 {
		t.Errorf("ReorderPoint = %d, want default 5", product.ReorderPoint)
	}
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *CreateProductInput
	}{
		{"empty name", &CreateProductInput{Name: "  ", Price: 10}},
		{"negative price", &CreateProductInput{Name: "ของ", Price: -1}},
		{"negative stock", &CreateProductInput{Name: "ของ", Price: 10, Stock: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.products.CreateProduct(ctx, env.shopID, tc.input)
			if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 400 {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestGetProductByBarcode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	barcode := "8850001234567"
	product, err := env.products.CreateProduct(ctx, env.shopID, &CreateProductInput{
		Name:    "นมกล่อง",
		Barcode: &barcode,
		Price:   14,
		Stock:   36,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := env.products.GetProductByBarcode(ctx, env.shopID, barcode)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found.ID != product.ID {
		t.Errorf("found %s, want %s", found.ID, product.ID)
	}

	_, err = env.products.GetProductByBarcode(ctx, env.shopID, "0000000000000")
	if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 404 {
		t.Errorf("unknown barcode: err = %v, want not found", err)
	}
}

func TestUpdateProductNeverTouchesStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "ถ่านไฟฉาย", 45, 8)

	newPrice := 50.0
	updated, err := env.products.UpdateProduct(ctx, env.shopID, product.ID, &UpdateProductInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 5000 {
		t.Errorf("Price = %d, want 5000", updated.Price)
	}

	got, _ := env.products.GetProduct(ctx, env.shopID, product.ID)
	if got.Stock != 8 {
		t.Errorf("Stock = %d after catalog edit, want 8", got.Stock)
	}
}

func TestDeleteProductIsPermanent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "สินค้าเลิกขาย", 99, 0)

	if err := env.products.DeleteProduct(ctx, env.shopID, product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err := env.products.GetProduct(ctx, env.shopID, product.ID)
	if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 404 {
		t.Fatalf("get deleted: err = %v, want not found", err)
	}

	if err := env.products.DeleteProduct(ctx, env.shopID, product.ID); err == nil {
		t.Fatal("second delete succeeded, want not found")
	}
}

func TestDeleteProductKeepsMovementHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "สินค้าชั่วคราว", 10, 5)

	if _, err := env.stock.StockIn(ctx, env.shopID, product.ID, 3, nil); err != nil {
		t.Fatalf("stock in: %v", err)
	}
	if err := env.products.DeleteProduct(ctx, env.shopID, product.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	movements, err := env.stock.ListMovements(ctx, env.shopID, nil)
	if err != nil {
		t.Fatalf("list movements: %v", err)
	}
	if len(movements.Items) != 1 {
		t.Errorf("movements after delete = %d, want 1", len(movements.Items))
	}
}

func TestLowStockList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	low, err := env.products.CreateProduct(ctx, env.shopID, &CreateProductInput{
		Name: "ใกล้หมด", Price: 10, Stock: 2,
	})
	if err != nil {
		t.Fatalf("create low: %v", err)
	}
	env.createProduct(t, "เหลือเยอะ", 10, 50)

	products, err := env.products.GetLowStockProducts(ctx, env.shopID)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(products) != 1 || products[0].ID != low.ID {
		t.Errorf("low stock list = %d items, want just the low one", len(products))
	}
}

func TestListProductsWithCursorPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		env.createProduct(t, "สินค้า", 10, 10)
	}

	page, err := env.products.ListProductsWithCursor(ctx, env.shopID, &repository.ProductCursorFilterParams{
		Cursor: &pagination.CursorParams{Limit: 2},
	})
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("first page = %d items, want 2", len(page.Items))
	}
	if !page.Pagination.HasNext || page.Pagination.NextCursor == nil {
		t.Fatal("first page should have a next cursor")
	}

	seen := map[string]bool{}
	for _, p := range page.Items {
		seen[p.ID.String()] = true
	}

	next, err := env.products.ListProductsWithCursor(ctx, env.shopID, &repository.ProductCursorFilterParams{
		Cursor: &pagination.CursorParams{Cursor: *page.Pagination.NextCursor, Limit: 2},
	})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	for _, p := range next.Items {
		if seen[p.ID.String()] {
			t.Errorf("product %s appeared on both pages", p.ID)
		}
	}
}
