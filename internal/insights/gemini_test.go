package insights

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/nexus/internal/fixtures"
)

// fakeGemini serves generateContent with the given status and body and
// records the last request it saw.
type fakeGemini struct {
	status int
	body   string
	path   string
	key    string
	req    sentRequest
}

// sentRequest is the part of a generateContent body the tests inspect.
type sentRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.path = r.URL.Path
	f.key = r.Header.Get("x-goog-api-key")
	data, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(data, &f.req)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func newTestClient(t *testing.T, f *fakeGemini) *Gemini {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewGemini("test-key", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
}

const okBody = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Reorder "},{"text":"the monitor."}]}}]}`

func TestGemini_NoKey(t *testing.T) {
	g := NewGemini("")
	ctx := context.Background()

	assert.Equal(t, MsgStockNoKey, g.StockInsights(ctx, fixtures.Stock()))
	assert.Equal(t, MsgSalesNoKey, g.SalesPrediction(ctx, fixtures.Sales()))
}

func TestGemini_StockInsights(t *testing.T) {
	f := &fakeGemini{status: http.StatusOK, body: okBody}
	g := newTestClient(t, f)

	got := g.StockInsights(context.Background(), fixtures.Stock())
	assert.Equal(t, "Reorder the monitor.", got)
	assert.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", f.path)
	assert.Equal(t, "test-key", f.key)

	require.Len(t, f.req.Contents, 1)
	assert.Equal(t, "user", f.req.Contents[0].Role)
	require.Len(t, f.req.Contents[0].Parts, 1)
	prompt := f.req.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, `{"name":"USB-C Monitor","quantity":0,"status":"Out of Stock"}`)
	assert.NotContains(t, prompt, "UM-004", "only name, quantity and status are shared")
}

func TestGemini_SalesPrediction(t *testing.T) {
	f := &fakeGemini{status: http.StatusOK, body: okBody}
	g := newTestClient(t, f)
	g.model = "custom-model"

	got := g.SalesPrediction(context.Background(), fixtures.Sales())
	assert.Equal(t, "Reorder the monitor.", got)
	assert.Equal(t, "/v1beta/models/custom-model:generateContent", f.path)
	assert.Contains(t, f.req.Contents[0].Parts[0].Text, `"customer_name":"Acme Corp"`)
}

func TestGemini_Fallbacks(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantStock string
		wantSales string
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`, MsgStockFailed, MsgSalesFailed},
		{"bad json", http.StatusOK, `{`, MsgStockFailed, MsgSalesFailed},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, MsgStockFailed, MsgSalesFailed},
		{"empty text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, MsgStockEmpty, MsgSalesEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestClient(t, &fakeGemini{status: tt.status, body: tt.body})
			ctx := context.Background()
			assert.Equal(t, tt.wantStock, g.StockInsights(ctx, fixtures.Stock()))
			assert.Equal(t, tt.wantSales, g.SalesPrediction(ctx, fixtures.Sales()))
		})
	}
}

func TestGemini_CancelledContext(t *testing.T) {
	g := newTestClient(t, &fakeGemini{status: http.StatusOK, body: okBody})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, MsgStockFailed, g.StockInsights(ctx, fixtures.Stock()))
}

func TestWithEndpoint_AddsTrailingSlash(t *testing.T) {
	g := NewGemini("k", WithEndpoint("http://localhost:8080"))
	assert.Equal(t, "http://localhost:8080/", g.endpoint)
}

func TestWithModel_IgnoresEmpty(t *testing.T) {
	g := NewGemini("k", WithModel(""))
	assert.Equal(t, DefaultModel, g.model)
}
