package service

import (
	"context"
	"testing"

	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/pkg/apperror"
)

func TestShiftCloseCashReconciliation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.shifts.OpenShift(ctx, env.shopID, &OpenShiftInput{
		UserID:      env.userID,
		OpeningCash: 500,
	})
	if err != nil {
		t.Fatalf("open shift: %v", err)
	}

	// 1200 baht cash, 300 baht credit during the shift
	cashProduct := env.createProduct(t, "เบียร์ลัง", 1200, 5)
	env.cashSale(t, cashProduct, 1)

	creditProduct := env.createProduct(t, "ข้าวหอมมะลิ", 300, 5)
	customer := env.createCustomer(t, "ป้าแมว")
	if _, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID:      env.userID,
		CustomerID:  &customer.ID,
		PaymentType: "credit",
		Items:       []SaleItemInput{{ProductID: creditProduct.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("credit sale: %v", err)
	}

	closed, err := env.shifts.CloseShift(ctx, env.shopID, &CloseShiftInput{ActualCash: 1680})
	if err != nil {
		t.Fatalf("close shift: %v", err)
	}

	// Expected drawer = 500 float + 1200 cash sales; credit never enters it
	if closed.ExpectedCash != 170000 {
		t.Errorf("ExpectedCash = %d, want 170000", closed.ExpectedCash)
	}
	if closed.CashDifference != -2000 {
		t.Errorf("CashDifference = %d, want -2000", closed.CashDifference)
	}
	if closed.TotalSales != 150000 {
		t.Errorf("TotalSales = %d, want 150000", closed.TotalSales)
	}
	if closed.CashSales != 120000 {
		t.Errorf("CashSales = %d, want 120000", closed.CashSales)
	}
	if closed.CreditSales != 30000 {
		t.Errorf("CreditSales = %d, want 30000", closed.CreditSales)
	}
	if closed.SaleCount != 2 {
		t.Errorf("SaleCount = %d, want 2", closed.SaleCount)
	}
	if closed.Status != enum.ShiftClosed {
		t.Errorf("Status = %v, want closed", closed.Status)
	}
	if closed.EndTime == nil {
		t.Error("EndTime not set")
	}
}

func TestOpenShiftRejectsSecondOpen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.shifts.OpenShift(ctx, env.shopID, &OpenShiftInput{UserID: env.userID, OpeningCash: 100}); err != nil {
		t.Fatalf("open shift: %v", err)
	}

	_, err := env.shifts.OpenShift(ctx, env.shopID, &OpenShiftInput{UserID: env.userID, OpeningCash: 200})
	if !apperror.IsConflict(err) {
		t.Fatalf("second open: err = %v, want conflict", err)
	}
}

func TestCloseShiftWithoutOpenFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.shifts.CloseShift(context.Background(), env.shopID, &CloseShiftInput{ActualCash: 0})
	if !apperror.IsConflict(err) {
		t.Fatalf("close without open: err = %v, want conflict", err)
	}
}

func TestShiftNumbersIncrementWithinDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.shifts.OpenShift(ctx, env.shopID, &OpenShiftInput{UserID: env.userID, OpeningCash: 100})
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	if first.ShiftNumber != 1 {
		t.Errorf("first ShiftNumber = %d, want 1", first.ShiftNumber)
	}

	if _, err := env.shifts.CloseShift(ctx, env.shopID, &CloseShiftInput{ActualCash: 100}); err != nil {
		t.Fatalf("close first: %v", err)
	}

	second, err := env.shifts.OpenShift(ctx, env.shopID, &OpenShiftInput{UserID: env.userID, OpeningCash: 100})
	if err != nil {
		t.Fatalf("open second: %v", err)
	}
	if second.ShiftNumber != 2 {
		t.Errorf("second ShiftNumber = %d, want 2", second.ShiftNumber)
	}
}

func TestGetCurrentShiftReportsLiveFigures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.shifts.OpenShift(ctx, env.shopID, &OpenShiftInput{UserID: env.userID, OpeningCash: 200}); err != nil {
		t.Fatalf("open shift: %v", err)
	}

	product := env.createProduct(t, "กาแฟกระป๋อง", 15, 48)
	env.cashSale(t, product, 4)

	current, err := env.shifts.GetCurrentShift(ctx, env.shopID)
	if err != nil {
		t.Fatalf("get current shift: %v", err)
	}
	if current.CashSales != 6000 {
		t.Errorf("CashSales = %d, want 6000", current.CashSales)
	}
	if current.ExpectedCash != 26000 {
		t.Errorf("ExpectedCash = %d, want 26000", current.ExpectedCash)
	}
	if current.SaleCount != 1 {
		t.Errorf("SaleCount = %d, want 1", current.SaleCount)
	}
}

func TestOpenShiftNegativeFloatRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.shifts.OpenShift(context.Background(), env.shopID, &OpenShiftInput{
		UserID:      env.userID,
		OpeningCash: -1,
	})
	if appErr := apperror.GetAppError(err); err == nil || appErr.Code != 400 {
		t.Fatalf("err = %v, want validation error", err)
	}
}
