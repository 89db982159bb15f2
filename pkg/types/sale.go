package types

import "github.com/shopspring/decimal"

// Sale statuses.
const (
	SaleCompleted = "Completed"
	SalePending   = "Pending"
	SaleRefunded  = "Refunded"
)

// SaleStatuses lists the sale statuses in display order.
var SaleStatuses = []string{SaleCompleted, SalePending, SaleRefunded}

// SaleRecord is one customer order.
type SaleRecord struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Items        []string        `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Status       string          `json:"status"`
}

// RecordID returns the order identity.
func (s SaleRecord) RecordID() string { return s.ID }
