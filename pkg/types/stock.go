package types

import "github.com/shopspring/decimal"

// Stock item statuses.
const (
	StockInStock    = "In Stock"
	StockLowStock   = "Low Stock"
	StockOutOfStock = "Out of Stock"
)

// StockStatuses lists the stock statuses in display order.
var StockStatuses = []string{StockInStock, StockLowStock, StockOutOfStock}

// StockItem is one product line in the inventory.
type StockItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	LastUpdated string          `json:"last_updated"` // YYYY-MM-DD
}

// RecordID returns the item identity.
func (s StockItem) RecordID() string { return s.ID }

// Reorder reports whether the item needs restocking.
func (s StockItem) Reorder() bool {
	return s.Status == StockLowStock || s.Status == StockOutOfStock
}
