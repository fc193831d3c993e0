package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pattarad/rankha-pos/internal/domain/enum"
	"github.com/pattarad/rankha-pos/pkg/apperror"
)

func TestIssueInvoiceSequentialNumbering(t *testing.T) {
	env := newTestEnv(t)
	env.enableVat(t)
	env.completeSellerInfo(t)
	ctx := context.Background()
	product := env.createProduct(t, "เครื่องเขียน", 214, 20)

	year := time.Now().Year()
	for i := 1; i <= 3; i++ {
		sale := env.cashSale(t, product, 1)
		invoice, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
			UserID:    env.userID,
			SaleID:    sale.ID,
			BuyerName: "บริษัท ทดสอบ จำกัด",
		})
		if err != nil {
			t.Fatalf("issue invoice %d: %v", i, err)
		}
		want := fmt.Sprintf("TAX-%d-%06d", year, i)
		if invoice.InvoiceNumber != want {
			t.Errorf("invoice %d number = %s, want %s", i, invoice.InvoiceNumber, want)
		}
	}
}

func TestCancelledInvoiceNumberNotReused(t *testing.T) {
	env := newTestEnv(t)
	env.enableVat(t)
	env.completeSellerInfo(t)
	ctx := context.Background()
	product := env.createProduct(t, "อุปกรณ์ไฟฟ้า", 500, 20)

	first := env.cashSale(t, product, 1)
	invoice, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: first.ID, BuyerName: "ผู้ซื้อ ก",
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cancelled, err := env.invoices.CancelInvoice(ctx, env.shopID, invoice.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != enum.InvoiceCancelled {
		t.Errorf("status = %v, want cancelled", cancelled.Status)
	}
	if cancelled.InvoiceNumber != invoice.InvoiceNumber {
		t.Errorf("number changed on cancel: %s -> %s", invoice.InvoiceNumber, cancelled.InvoiceNumber)
	}

	// The burned number stays burned; the next invoice advances past it
	second := env.cashSale(t, product, 1)
	next, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: second.ID, BuyerName: "ผู้ซื้อ ข",
	})
	if err != nil {
		t.Fatalf("issue after cancel: %v", err)
	}
	want := fmt.Sprintf("TAX-%d-%06d", time.Now().Year(), 2)
	if next.InvoiceNumber != want {
		t.Errorf("number after cancel = %s, want %s", next.InvoiceNumber, want)
	}
}

func TestIssueInvoiceOnePerSale(t *testing.T) {
	env := newTestEnv(t)
	env.enableVat(t)
	env.completeSellerInfo(t)
	ctx := context.Background()
	product := env.createProduct(t, "ของชำ", 107, 10)
	sale := env.cashSale(t, product, 1)

	if _, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: sale.ID, BuyerName: "ผู้ซื้อ",
	}); err != nil {
		t.Fatalf("first issue: %v", err)
	}

	_, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: sale.ID, BuyerName: "ผู้ซื้อ",
	})
	if !apperror.IsConflict(err) {
		t.Fatalf("second issue: err = %v, want conflict", err)
	}
}

func TestIssueInvoiceRequiresVatSale(t *testing.T) {
	env := newTestEnv(t)
	env.completeSellerInfo(t)
	product := env.createProduct(t, "ผักสด", 50, 10)
	sale := env.cashSale(t, product, 1) // VAT disabled, sale carries no VAT

	_, err := env.invoices.IssueInvoice(context.Background(), env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: sale.ID, BuyerName: "ผู้ซื้อ",
	})
	if !apperror.IsConflict(err) {
		t.Fatalf("err = %v, want conflict for no-VAT sale", err)
	}
}

func TestIssueInvoiceIncompleteSellerInfo(t *testing.T) {
	env := newTestEnv(t)
	env.enableVat(t)
	ctx := context.Background()

	// Only the name is set; address and tax ID are still blank
	name := "ร้านป้าดา"
	if _, err := env.settings.UpdateSettings(ctx, env.shopID, &UpdateSettingsInput{
		SellerName: &name,
	}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	product := env.createProduct(t, "เครื่องดื่ม", 107, 10)
	sale := env.cashSale(t, product, 1)

	_, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: sale.ID, BuyerName: "ผู้ซื้อ",
	})
	if err == nil {
		t.Fatal("expected error for incomplete seller info")
	}

	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Errorf("code = %d, want 422", appErr.Code)
	}
	// The message names the missing fields with their Thai labels
	if !strings.Contains(appErr.Message, "ที่อยู่") {
		t.Errorf("message %q does not name the missing address", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "เลขประจำตัวผู้เสียภาษี") {
		t.Errorf("message %q does not name the missing tax ID", appErr.Message)
	}
	if strings.Contains(appErr.Message, "ชื่อผู้ขาย") {
		t.Errorf("message %q names the seller name, which was provided", appErr.Message)
	}
}

func TestIssueInvoiceSnapshotsSellerAndAmounts(t *testing.T) {
	env := newTestEnv(t)
	env.enableVat(t)
	env.completeSellerInfo(t)
	ctx := context.Background()
	product := env.createProduct(t, "สินค้า VAT", 107, 10)
	sale := env.cashSale(t, product, 1)

	invoice, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: sale.ID, BuyerName: "ผู้ซื้อ",
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if invoice.Subtotal != 10000 || invoice.VatAmount != 700 || invoice.TotalWithVat != 10700 {
		t.Errorf("amounts = %d/%d/%d, want 10000/700/10700",
			invoice.Subtotal, invoice.VatAmount, invoice.TotalWithVat)
	}

	// Changing the seller name afterwards must not touch the issued invoice
	newName := "ร้านเปลี่ยนชื่อ"
	if _, err := env.settings.UpdateSettings(ctx, env.shopID, &UpdateSettingsInput{SellerName: &newName}); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	got, err := env.invoices.GetInvoice(ctx, env.shopID, invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if got.SellerName != "ร้านป้าดา" {
		t.Errorf("SellerName = %s, want snapshot ร้านป้าดา", got.SellerName)
	}
}

func TestCancelInvoiceTwiceRejected(t *testing.T) {
	env := newTestEnv(t)
	env.enableVat(t)
	env.completeSellerInfo(t)
	ctx := context.Background()
	product := env.createProduct(t, "สินค้า", 107, 10)
	sale := env.cashSale(t, product, 1)

	invoice, err := env.invoices.IssueInvoice(ctx, env.shopID, &IssueInvoiceInput{
		UserID: env.userID, SaleID: sale.ID, BuyerName: "ผู้ซื้อ",
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := env.invoices.CancelInvoice(ctx, env.shopID, invoice.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if _, err := env.invoices.CancelInvoice(ctx, env.shopID, invoice.ID); !apperror.IsConflict(err) {
		t.Fatalf("second cancel: err = %v, want conflict", err)
	}
}
