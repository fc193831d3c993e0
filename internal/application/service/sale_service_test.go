package service

import (
	"context"
	"testing"

	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/internal/domain/repository"
	"github.com/pattarad/rankha-pos/pkg/apperror"
)

func TestCreateSaleDecrementsStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "น้ำปลา", 25, 10)

	env.cashSale(t, product, 3)

	got, err := env.products.GetProduct(ctx, env.shopID, product.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.Stock != 7 {
		t.Errorf("stock after first sale = %d, want 7", got.Stock)
	}

	env.cashSale(t, product, 5)

	got, _ = env.products.GetProduct(ctx, env.shopID, product.ID)
	if got.Stock != 2 {
		t.Errorf("stock after second sale = %d, want 2", got.Stock)
	}

	// Third sale wants more than remains; it must fail and leave stock alone
	_, err = env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		PaymentType: "cash",
		Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	if !apperror.IsConflict(err) {
		t.Fatalf("oversell error = %v, want conflict", err)
	}

	got, _ = env.products.GetProduct(ctx, env.shopID, product.ID)
	if got.Stock != 2 {
		t.Errorf("stock after rejected sale = %d, want 2", got.Stock)
	}
}

func TestCreateSaleInsufficientStockRollsBackAllLines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	abundant := env.createProduct(t, "ข้าวสาร", 120, 50)
	scarce := env.createProduct(t, "นมข้น", 22, 1)

	_, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		PaymentType: "cash",
		Items: []SaleItemInput{
			{ProductID: abundant.ID, Quantity: 2},
			{ProductID: scarce.ID, Quantity: 3},
		},
	})
	if !apperror.IsConflict(err) {
		t.Fatalf("error = %v, want conflict", err)
	}

	// The abundant product's decrement must have been rolled back with the sale
	got, _ := env.products.GetProduct(ctx, env.shopID, abundant.ID)
	if got.Stock != 50 {
		t.Errorf("abundant stock = %d, want 50 (rolled back)", got.Stock)
	}

	sales, err := env.sales.ListSales(ctx, env.shopID, &repository.SaleFilterParams{})
	if err != nil {
		t.Fatalf("list sales: %v", err)
	}
	if len(sales.Items) != 0 {
		t.Errorf("sales recorded = %d, want 0", len(sales.Items))
	}
}

func TestCreateSaleVatExtraction(t *testing.T) {
	env := newTestEnv(t)
	env.enableVat(t)
	product := env.createProduct(t, "น้ำมันพืช", 107, 10)

	sale := env.cashSale(t, product, 1)

	// Prices are VAT-inclusive: 107 baht contains 7 baht of VAT
	if sale.TotalWithVat != 10700 {
		t.Errorf("TotalWithVat = %d, want 10700", sale.TotalWithVat)
	}
	if sale.VatAmount != 700 {
		t.Errorf("VatAmount = %d, want 700", sale.VatAmount)
	}
	if sale.Subtotal != 10000 {
		t.Errorf("Subtotal = %d, want 10000", sale.Subtotal)
	}
	if sale.VatRate != 7 {
		t.Errorf("VatRate = %d, want 7", sale.VatRate)
	}
}

func TestCreateSaleVatDisabled(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "น้ำตาล", 30, 10)

	sale := env.cashSale(t, product, 2)

	if sale.VatAmount != 0 || sale.VatRate != 0 {
		t.Errorf("vat = %d @ %d%%, want zero", sale.VatAmount, sale.VatRate)
	}
	if sale.Subtotal != sale.TotalWithVat {
		t.Errorf("subtotal %d != total %d with VAT disabled", sale.Subtotal, sale.TotalWithVat)
	}
	if sale.TotalWithVat != 6000 {
		t.Errorf("TotalWithVat = %d, want 6000", sale.TotalWithVat)
	}
}

func TestCreditSaleRequiresCustomer(t *testing.T) {
	env := newTestEnv(t)
	product := env.createProduct(t, "ไข่ไก่", 5, 30)

	_, err := env.sales.CreateSale(context.Background(), env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		PaymentType: "credit",
		Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 400 {
		t.Fatalf("credit sale without customer: err = %v, want validation error", err)
	}
}

func TestCreditSaleIncrementsDebt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "ปลากระป๋อง", 18, 20)
	customer := env.createCustomer(t, "ลุงสมชาย")

	_, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		CustomerID:  &customer.ID,
		PaymentType: "credit",
		Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("credit sale: %v", err)
	}

	got, err := env.customers.GetCustomer(ctx, env.shopID, customer.ID)
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.TotalDebt != 5400 {
		t.Errorf("TotalDebt = %d, want 5400", got.TotalDebt)
	}
}

func TestCreateSaleSnapshotsNameAndPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "มาม่า", 7, 100)

	sale := env.cashSale(t, product, 2)

	// Rename and reprice after the sale; the sale lines must not move
	newName := "มาม่าต้มยำ"
	newPrice := 8.0
	if _, err := env.products.UpdateProduct(ctx, env.shopID, product.ID, &UpdateProductInput{
		Name:  &newName,
		Price: &newPrice,
	}); err != nil {
		t.Fatalf("update product: %v", err)
	}

	got, err := env.sales.GetSale(ctx, env.shopID, sale.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(got.Items))
	}
	if got.Items[0].ProductName != "มาม่า" {
		t.Errorf("ProductName = %q, want snapshot มาม่า", got.Items[0].ProductName)
	}
	if got.Items[0].UnitPrice != 700 {
		t.Errorf("UnitPrice = %d, want 700", got.Items[0].UnitPrice)
	}
}

func TestCreateSaleWritesOutMovements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "น้ำดื่ม", 10, 24)

	sale := env.cashSale(t, product, 6)

	movements, err := env.stock.ListMovements(ctx, env.shopID, nil)
	if err != nil {
		t.Fatalf("list movements: %v", err)
	}
	if len(movements.Items) != 1 {
		t.Fatalf("movements = %d, want 1", len(movements.Items))
	}
	m := movements.Items[0]
	if m.Type != enum.MovementOut || m.Quantity != 6 || m.Source != enum.SourceSale {
		t.Errorf("movement = %s %d %s, want OUT 6 SALE", m.Type, m.Quantity, m.Source)
	}
	if m.Note == nil || *m.Note != "sale:"+sale.ID.String() {
		t.Errorf("movement note = %v, want sale reference", m.Note)
	}
}

func TestCreateSaleValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "ขนมปัง", 20, 10)

	cases := []struct {
		name  string
		input *CreateSaleInput
	}{
		{"no items", &CreateSaleInput{UserID: env.userID, PaymentType: "cash"}},
		{"zero quantity", &CreateSaleInput{
			UserID: env.userID, PaymentType: "cash",
			Items: []SaleItemInput{{ProductID: product.ID, Quantity: 0}},
		}},
		{"bad payment type", &CreateSaleInput{
			UserID: env.userID, PaymentType: "cheque",
			Items: []SaleItemInput{{ProductID: product.ID, Quantity: 1}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.sales.CreateSale(ctx, env.shopID, tc.input)
			if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 400 {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}
