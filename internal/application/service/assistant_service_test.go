package service

import (
	"context"
	"strings"
	"testing"
)

func TestAssistantAnswersTodaySalesThai(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := env.createProduct(t, "ขนมปังปี๊บ", 120, 10)
	env.cashSale(t, product, 1)

	reply, err := env.assistant.Ask(ctx, env.shopID, "วันนี้ยอดขายเท่าไหร่")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply.Intent != "today_sales" {
		t.Errorf("intent = %s, want today_sales", reply.Intent)
	}
	if !strings.Contains(reply.Message, "120.00") {
		t.Errorf("message %q does not carry the total", reply.Message)
	}
}

func TestAssistantAnswersLowStockEnglish(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createProduct(t, "เกลือ", 8, 1)

	reply, err := env.assistant.Ask(ctx, env.shopID, "which products are low stock?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply.Intent != "low_stock" {
		t.Errorf("intent = %s, want low_stock", reply.Intent)
	}
	if !strings.Contains(reply.Message, "เกลือ") {
		t.Errorf("message %q does not name the product", reply.Message)
	}
}

func TestAssistantAnswersDebtors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "เหล้าขาว", 90, 10)
	customer := env.createCustomer(t, "ลุงหนวด")

	if _, err := env.sales.CreateSale(ctx, env.shopID, &CreateSaleInput{
		UserID: env.userID, CustomerID: &customer.ID, PaymentType: "credit",
		Items: []SaleItemInput{{ProductID: product.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("credit sale: %v", err)
	}

	reply, err := env.assistant.Ask(ctx, env.shopID, "ใครติดหนี้ร้านบ้าง")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply.Intent != "debtors" {
		t.Errorf("intent = %s, want debtors", reply.Intent)
	}
	if !strings.Contains(reply.Message, "ลุงหนวด") {
		t.Errorf("message %q does not name the debtor", reply.Message)
	}
}

func TestAssistantBestSellersBeforeGenericSales(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	product := env.createProduct(t, "ลูกอม", 1, 200)
	env.cashSale(t, product, 20)

	// "สินค้าขายดี" contains ยอดขาย-adjacent phrasing; the more specific
	// best-sellers intent must win
	reply, err := env.assistant.Ask(ctx, env.shopID, "สินค้าขายดีของร้านคืออะไร")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply.Intent != "top_products" {
		t.Errorf("intent = %s, want top_products", reply.Intent)
	}
}

func TestAssistantUnknownQuestionFallsBack(t *testing.T) {
	env := newTestEnv(t)

	reply, err := env.assistant.Ask(context.Background(), env.shopID, "พรุ่งนี้ฝนจะตกไหม")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if reply.Intent != "unknown" {
		t.Errorf("intent = %s, want unknown", reply.Intent)
	}
}

func TestAssistantRejectsEmptyQuestion(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.assistant.Ask(context.Background(), env.shopID, "   "); err == nil {
		t.Fatal("empty question accepted")
	}
}
