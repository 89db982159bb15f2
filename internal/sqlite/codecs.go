// This file maps each entity to its SQLite row and JSONL file.
package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type record interface {
	RecordID() string
}

// codec describes how one entity type is stored. The first column is always
// the primary key "id".
type codec[T record] struct {
	table   string
	file    string
	columns []string
	args    func(T) ([]any, error)
	scan    func(rowScanner) (T, error)
	withID  func(T, string) T
}

var stockCodec = codec[types.StockItem]{
	table:   "stock",
	file:    stockJSONL,
	columns: []string{"id", "name", "sku", "category", "quantity", "price", "status", "last_updated"},
	args: func(s types.StockItem) ([]any, error) {
		return []any{s.ID, s.Name, s.SKU, s.Category, s.Quantity, s.Price.String(), s.Status, s.LastUpdated}, nil
	},
	scan: func(row rowScanner) (types.StockItem, error) {
		var s types.StockItem
		var price string
		if err := row.Scan(&s.ID, &s.Name, &s.SKU, &s.Category, &s.Quantity, &price, &s.Status, &s.LastUpdated); err != nil {
			return s, err
		}
		d, err := decimal.NewFromString(price)
		if err != nil {
			return s, fmt.Errorf("parsing stock price %q: %w", price, err)
		}
		s.Price = d
		return s, nil
	},
	withID: func(s types.StockItem, id string) types.StockItem { s.ID = id; return s },
}

var salesCodec = codec[types.SaleRecord]{
	table:   "sales",
	file:    salesJSONL,
	columns: []string{"id", "customer_name", "items", "total_amount", "date", "status"},
	args: func(s types.SaleRecord) ([]any, error) {
		items, err := json.Marshal(s.Items)
		if err != nil {
			return nil, fmt.Errorf("encoding sale items: %w", err)
		}
		return []any{s.ID, s.CustomerName, string(items), s.TotalAmount.String(), s.Date, s.Status}, nil
	},
	scan: func(row rowScanner) (types.SaleRecord, error) {
		var s types.SaleRecord
		var items, total string
		if err := row.Scan(&s.ID, &s.CustomerName, &items, &total, &s.Date, &s.Status); err != nil {
			return s, err
		}
		if err := json.Unmarshal([]byte(items), &s.Items); err != nil {
			return s, fmt.Errorf("parsing sale items: %w", err)
		}
		d, err := decimal.NewFromString(total)
		if err != nil {
			return s, fmt.Errorf("parsing sale total %q: %w", total, err)
		}
		s.TotalAmount = d
		return s, nil
	},
	withID: func(s types.SaleRecord, id string) types.SaleRecord { s.ID = id; return s },
}

var crewCodec = codec[types.CrewMember]{
	table:   "crew",
	file:    crewJSONL,
	columns: []string{"id", "name", "role", "department", "status", "email", "performance_score"},
	args: func(c types.CrewMember) ([]any, error) {
		return []any{c.ID, c.Name, c.Role, c.Department, c.Status, c.Email, c.PerformanceScore}, nil
	},
	scan: func(row rowScanner) (types.CrewMember, error) {
		var c types.CrewMember
		err := row.Scan(&c.ID, &c.Name, &c.Role, &c.Department, &c.Status, &c.Email, &c.PerformanceScore)
		return c, err
	},
	withID: func(c types.CrewMember, id string) types.CrewMember { c.ID = id; return c },
}
