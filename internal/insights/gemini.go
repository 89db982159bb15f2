package insights

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

// DefaultEndpoint is the Gemini API base URL.
const DefaultEndpoint = "https://generativelanguage.googleapis.com/"

// apiVersion is the API version the client calls.
const apiVersion = "v1beta"

var errNoCandidates = errors.New("response has no candidates")

// Gemini implements Summarizer with the genai SDK against the Gemini API.
type Gemini struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// Option configures a Gemini client.
type Option func(*Gemini)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(g *Gemini) {
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		g.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gemini) { g.client = c }
}

// WithLogger sets the logger that receives API errors.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gemini) { g.logger = l }
}

// NewGemini creates a client. An empty apiKey yields a client that answers
// every request with the "API Key not configured" message.
func NewGemini(apiKey string, opts ...Option) *Gemini {
	g := &Gemini{
		apiKey:   apiKey,
		model:    DefaultModel,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ Summarizer = (*Gemini)(nil)

// StockInsights summarizes inventory and suggests reorder priorities.
func (g *Gemini) StockInsights(ctx context.Context, stock []types.StockItem) string {
	if g.apiKey == "" {
		return MsgStockNoKey
	}
	prompt, err := stockPrompt(stock)
	if err != nil {
		g.logger.Error("gemini api error", "op", "stock_insights", "err", err)
		return MsgStockFailed
	}
	return g.answer(ctx, "stock_insights", prompt, MsgStockEmpty, MsgStockFailed)
}

// SalesPrediction names best sellers and predicts next week's trend.
func (g *Gemini) SalesPrediction(ctx context.Context, sales []types.SaleRecord) string {
	if g.apiKey == "" {
		return MsgSalesNoKey
	}
	prompt, err := salesPrompt(sales)
	if err != nil {
		g.logger.Error("gemini api error", "op", "sales_prediction", "err", err)
		return MsgSalesFailed
	}
	return g.answer(ctx, "sales_prediction", prompt, MsgSalesEmpty, MsgSalesFailed)
}

func (g *Gemini) answer(ctx context.Context, op, prompt, empty, failed string) string {
	text, err := g.generate(ctx, prompt)
	if err != nil {
		g.logger.Error("gemini api error", "op", op, "model", g.model, "err", err)
		return failed
	}
	if strings.TrimSpace(text) == "" {
		return empty
	}
	return text
}

// generate sends one prompt and returns the text of the first candidate.
func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     g.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.client,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    g.endpoint,
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return "", fmt.Errorf("creating genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generateContent: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errNoCandidates
	}
	return resp.Text(), nil
}
