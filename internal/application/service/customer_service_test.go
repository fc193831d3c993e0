package service

import (
	"context"
	"testing"

	"github.com/pattarad/rankha-pos/pkg/apperror"
)

func TestPayDebtFloorsAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "ข้าวเหนียว", 100, 10)
	customer := env.createCustomer(t, "น้าไก่")

	if _, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		CustomerID:  &customer.ID,
		PaymentType: "credit",
		Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("credit sale: %v", err)
	}

	// Debt is 100 baht; paying 150 clears it rather than going negative
	got, err := env.customers.PayDebt(ctx, env.shopID, customer.ID, 150)
	if err != nil {
		t.Fatalf("pay debt: %v", err)
	}
	if got.TotalDebt != 0 {
		t.Errorf("TotalDebt after overpayment = %d, want 0", got.TotalDebt)
	}
}

func TestPayDebtPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "น้ำแข็ง", 40, 10)
	customer := env.createCustomer(t, "พี่หนุ่ม")

	if _, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		CustomerID:  &customer.ID,
		PaymentType: "credit",
		Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("credit sale: %v", err)
	}

	got, err := env.customers.PayDebt(ctx, env.shopID, customer.ID, 30)
	if err != nil {
		t.Fatalf("pay debt: %v", err)
	}
	if got.TotalDebt != 5000 {
		t.Errorf("TotalDebt = %d, want 5000", got.TotalDebt)
	}
}

func TestPayDebtRejectsNonPositiveAmounts(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "ป้าน้อย")

	for _, amount := range []float64{0, -50} {
		_, err := env.customers.PayDebt(context.Background(), env.shopID, customer.ID, amount)
		if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 400 {
			t.Errorf("PayDebt(%v): err = %v, want validation error", amount, err)
		}
	}
}

func TestAddDebtManualEntry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t, "ป้าศรี")

	got, err := env.customers.AddDebt(ctx, env.shopID, customer.ID, 250.50)
	if err != nil {
		t.Fatalf("add debt: %v", err)
	}
	if got.TotalDebt != 25050 {
		t.Errorf("TotalDebt = %d, want 25050", got.TotalDebt)
	}

	// Stacks on top of existing debt
	got, err = env.customers.AddDebt(ctx, env.shopID, customer.ID, 50)
	if err != nil {
		t.Fatalf("second add debt: %v", err)
	}
	if got.TotalDebt != 30050 {
		t.Errorf("TotalDebt = %d, want 30050", got.TotalDebt)
	}

	for _, amount := range []float64{0, -10} {
		if _, err := env.customers.AddDebt(ctx, env.shopID, customer.ID, amount); err == nil {
			t.Errorf("AddDebt(%v): want validation error", amount)
		}
	}
}

func TestDeleteCustomerWithDebtBlocked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "แป้งมัน", 35, 10)
	customer := env.createCustomer(t, "ลุงดำ")

	if _, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		CustomerID:  &customer.ID,
		PaymentType: "credit",
		Items:       []SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("credit sale: %v", err)
	}

	if err := env.customers.DeleteCustomer(ctx, env.shopID, customer.ID); !apperror.IsConflict(err) {
		t.Fatalf("delete debtor: err = %v, want conflict", err)
	}

	// Once the debt is cleared deletion goes through
	if _, err := env.customers.PayDebt(ctx, env.shopID, customer.ID, 35); err != nil {
		t.Fatalf("pay debt: %v", err)
	}
	if err := env.customers.DeleteCustomer(ctx, env.shopID, customer.ID); err != nil {
		t.Fatalf("delete after payoff: %v", err)
	}
}

func TestListDebtorsOrdersByDebt(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "น้ำอัดลม", 20, 100)

	small := env.createCustomer(t, "หนูนา")
	big := env.createCustomer(t, "เฮียชัย")
	env.createCustomer(t, "คนไม่ติดหนี้")

	if _, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID: env.userID, CustomerID: &small.ID, PaymentType: "credit",
		Items: []SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("small credit sale: %v", err)
	}
	if _, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID: env.userID, CustomerID: &big.ID, PaymentType: "credit",
		Items: []SaleItemInput{{ProductID: product.ID, Quantity: 5}},
	}); err != nil {
		t.Fatalf("big credit sale: %v", err)
	}

	debtors, err := env.customers.ListDebtors(ctx, env.shopID)
	if err != nil {
		t.Fatalf("list debtors: %v", err)
	}
	if len(debtors) != 2 {
		t.Fatalf("debtors = %d, want 2", len(debtors))
	}
	if debtors[0].Name != "เฮียชัย" {
		t.Errorf("first debtor = %s, want เฮียชัย (largest debt first)", debtors[0].Name)
	}
}
