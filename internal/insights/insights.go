// Package insights produces natural-language summaries of inventory and sales
// data using the Gemini text-generation API.
//
// A Summarizer never fails: every outcome, including a missing API key or a
// transport error, is reported as display text.
package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// Fixed messages shown in place of generated text.
const (
	MsgStockNoKey  = "API Key not configured. Please set insights.api_key or NEXUS_INSIGHTS_API_KEY."
	MsgSalesNoKey  = "API Key not configured."
	MsgStockFailed = "Failed to generate AI insights. Please try again later."
	MsgSalesFailed = "Failed to generate sales prediction."
	MsgStockEmpty  = "No insights generated."
	MsgSalesEmpty  = "No prediction generated."
)

// Summarizer turns table snapshots into display text.
type Summarizer interface {
	StockInsights(ctx context.Context, stock []types.StockItem) string
	SalesPrediction(ctx context.Context, sales []types.SaleRecord) string
}

// stockLine is the slice of a stock item shared with the model.
type stockLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

func stockPrompt(stock []types.StockItem) (string, error) {
	lines := make([]stockLine, 0, len(stock))
	for _, s := range stock {
		lines = append(lines, stockLine{Name: s.Name, Quantity: s.Quantity, Status: s.Status})
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return "", fmt.Errorf("encoding stock snapshot: %w", err)
	}
	return "Analyze the following stock inventory data and provide a concise, actionable summary.\n" +
		"Highlight items with 'Low Stock' or 'Out of Stock' status and suggest reorder priorities.\n" +
		"Keep the tone professional and executive.\n\n" +
		"Inventory Data:\n" + string(data), nil
}

func salesPrompt(sales []types.SaleRecord) (string, error) {
	if sales == nil {
		sales = []types.SaleRecord{}
	}
	data, err := json.Marshal(sales)
	if err != nil {
		return "", fmt.Errorf("encoding sales snapshot: %w", err)
	}
	return "Based on the recent sales transactions below, briefly identify the best-selling items\n" +
		"and predict a potential trend for next week.\n\n" +
		"Sales Data:\n" + string(data), nil
}
