package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// geminiAgent answers the questions the keyword matcher could not. The model
// only gets read-only tools; it can look at sales, stock, and debt, never
// change anything.
type geminiAgent struct {
	apiKey        string
	model         string
	reportService *ReportService
}

func newGeminiAgent(apiKey, model string, reportService *ReportService) *geminiAgent {
	if model == "" {
		model = "gemini-2.0-flash-001"
	}
	return &geminiAgent{
		apiKey:        apiKey,
		model:         model,
		reportService: reportService,
	}
}

func (g *geminiAgent) ask(ctx context.Context, shopID uuid.UUID, question string) (*AssistantReply, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "get_today_summary",
					Description: "Get today's sales: total, cash, credit and sale count in baht.",
				},
				{
					Name:        "get_top_products",
					Description: "Get the best-selling products by quantity sold.",
				},
				{
					Name:        "get_low_stock",
					Description: "Get products at or below their reorder point.",
				},
				{
					Name:        "get_debtors",
					Description: "Get customers with outstanding debt in baht.",
				},
			},
		},
	}

	prompt := fmt.Sprintf(`SYSTEM: Today is %s. You are a POS assistant for a small Thai retail shop.
Answer in the language the user asked in (Thai or English). Use the tools to
look up real numbers; never invent figures. Amounts are in baht.

USER: %s`, time.Now().Format("2006-01-02"), question)

	session := model.StartChat()
	resp, err := session.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	// One round of tool calls is enough for these lookups
	for _, part := range resp.Candidates[0].Content.Parts {
		funcCall, ok := part.(genai.FunctionCall)
		if !ok {
			continue
		}

		result, err := g.callTool(ctx, shopID, funcCall.Name)
		if err != nil {
			return nil, err
		}

		resp, err = session.SendMessage(ctx, genai.FunctionResponse{
			Name:     funcCall.Name,
			Response: map[string]interface{}{"result": result},
		})
		if err != nil {
			return nil, err
		}
		break
	}

	return &AssistantReply{
		Intent:  "assistant",
		Message: textOf(resp),
	}, nil
}

func (g *geminiAgent) callTool(ctx context.Context, shopID uuid.UUID, name string) (string, error) {
	var payload interface{}
	var err error

	switch name {
	case "get_today_summary":
		payload, err = g.reportService.GetTodaySummary(ctx, shopID)
	case "get_top_products":
		payload, err = g.reportService.GetTopProducts(ctx, shopID, 5)
	case "get_low_stock":
		payload, err = g.reportService.GetLowStock(ctx, shopID)
	case "get_debtors":
		payload, err = g.reportService.GetDebtors(ctx, shopID)
	default:
		return "", fmt.Errorf("unknown tool %q", name)
	}
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func textOf(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "ดำเนินการเรียบร้อยค่ะ"
}
