package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pattarad/rankha-pos/pkg/apperror"
)

// AssistantService answers shopkeeper questions about the store. The default
// path is a deterministic keyword matcher over Thai and English phrasings,
// backed by the report service; when a Gemini API key is configured the
// unmatched questions are handed to the model with read-only tools instead of
// the fallback reply.
type AssistantService struct {
	reportService *ReportService
	gemini        *geminiAgent // nil when no API key is configured
}

// NewAssistantService creates a new assistant service
func NewAssistantService(reportService *ReportService, geminiAPIKey, geminiModel string) *AssistantService {
	s := &AssistantService{reportService: reportService}
	if geminiAPIKey != "" {
		s.gemini = newGeminiAgent(geminiAPIKey, geminiModel, reportService)
	}
	return s
}

// AssistantReply is the chat response payload
type AssistantReply struct {
	Message string      `json:"message"`
	Intent  string      `json:"intent"`
	Data    interface{} `json:"data,omitempty"`
}

type intent struct {
	name     string
	keywords []string
	handle   func(ctx context.Context, s *AssistantService, shopID uuid.UUID) (*AssistantReply, error)
}

// Matching is first-hit in declaration order, so more specific intents
// (best sellers) come before broader ones (sales).
var intents = []intent{
	{
		name:     "top_products",
		keywords: []string{"ขายดี", "สินค้าขายดี", "top", "best sell", "best-sell", "bestsell"},
		handle:   answerTopProducts,
	},
	{
		name:     "today_sales",
		keywords: []string{"ยอดขาย", "ขายได้", "วันนี้ขาย", "sales", "revenue", "sold today"},
		handle:   answerTodaySales,
	},
	{
		name:     "low_stock",
		keywords: []string{"ใกล้หมด", "สต็อก", "สต๊อก", "ของหมด", "เหลือน้อย", "low stock", "stock", "running low"},
		handle:   answerLowStock,
	},
	{
		name:     "debtors",
		keywords: []string{"หนี้", "ค้างชำระ", "ติดเงิน", "ลูกหนี้", "debt", "owe", "credit outstanding"},
		handle:   answerDebtors,
	},
}

// Ask answers a free-text question about the shop
func (s *AssistantService) Ask(ctx context.Context, shopID uuid.UUID, question string) (*AssistantReply, error) {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return nil, apperror.NewValidationError("Question is required")
	}

	for _, in := range intents {
		for _, kw := range in.keywords {
			if strings.Contains(q, kw) {
				return in.handle(ctx, s, shopID)
			}
		}
	}

	if s.gemini != nil {
		return s.gemini.ask(ctx, shopID, question)
	}

	return &AssistantReply{
		Intent: "unknown",
		Message: "ขอโทษค่ะ ไม่เข้าใจคำถาม ลองถามเรื่องยอดขาย สินค้าขายดี สต็อกใกล้หมด หรือลูกหนี้ " +
			"(Sorry, I did not understand. Try asking about sales, best sellers, low stock, or debtors.)",
	}, nil
}

func answerTodaySales(ctx context.Context, s *AssistantService, shopID uuid.UUID) (*AssistantReply, error) {
	summary, err := s.reportService.GetTodaySummary(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return &AssistantReply{
		Intent: "today_sales",
		Message: fmt.Sprintf("ยอดขายวันนี้ %.2f บาท จาก %d รายการ (เงินสด %.2f บาท, เงินเชื่อ %.2f บาท)",
			summary.TotalSales, summary.SaleCount, summary.CashSales, summary.CreditSales),
		Data: summary,
	}, nil
}

func answerTopProducts(ctx context.Context, s *AssistantService, shopID uuid.UUID) (*AssistantReply, error) {
	top, err := s.reportService.GetTopProducts(ctx, shopID, 5)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return &AssistantReply{
			Intent:  "top_products",
			Message: "ยังไม่มีข้อมูลการขาย (No sales recorded yet.)",
		}, nil
	}

	var b strings.Builder
	b.WriteString("สินค้าขายดี:")
	for i, p := range top {
		fmt.Fprintf(&b, "\n%d. %s ขายแล้ว %d ชิ้น (%.2f บาท)", i+1, p.ProductName, p.QuantitySold, p.Revenue)
	}
	return &AssistantReply{Intent: "top_products", Message: b.String(), Data: top}, nil
}

func answerLowStock(ctx context.Context, s *AssistantService, shopID uuid.UUID) (*AssistantReply, error) {
	products, err := s.reportService.GetLowStock(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &AssistantReply{
			Intent:  "low_stock",
			Message: "ไม่มีสินค้าใกล้หมด (No products are running low.)",
		}, nil
	}

	var b strings.Builder
	b.WriteString("สินค้าใกล้หมด:")
	for _, p := range products {
		fmt.Fprintf(&b, "\n- %s เหลือ %d ชิ้น", p.Name, p.Stock)
	}
	return &AssistantReply{Intent: "low_stock", Message: b.String(), Data: products}, nil
}

func answerDebtors(ctx context.Context, s *AssistantService, shopID uuid.UUID) (*AssistantReply, error) {
	debtors, err := s.reportService.GetDebtors(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if len(debtors) == 0 {
		return &AssistantReply{
			Intent:  "debtors",
			Message: "ไม่มีลูกค้าค้างชำระ (No customers owe money.)",
		}, nil
	}

	var b strings.Builder
	b.WriteString("ลูกค้าค้างชำระ:")
	for _, c := range debtors {
		fmt.Fprintf(&b, "\n- %s ค้าง %.2f บาท", c.Name, float64(c.TotalDebt)/100)
	}
	return &AssistantReply{Intent: "debtors", Message: b.String(), Data: debtors}, nil
}
