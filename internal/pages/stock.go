package pages

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// StockConfig describes the inventory table. Archiving is a notice only;
// it reports the number of archived items to out.
func StockConfig(out io.Writer) grid.Config[types.StockItem] {
	return grid.Config[types.StockItem]{
		Columns: []grid.Column[types.StockItem]{
			{Header: "Product Name", Key: "name", Value: func(s types.StockItem) string { return s.Name }},
			{Header: "SKU", Key: "sku", Value: func(s types.StockItem) string { return s.SKU }},
			{Header: "Category", Key: "category", Value: func(s types.StockItem) string { return s.Category }},
			{Header: "Quantity", Key: "quantity", Value: func(s types.StockItem) string { return strconv.Itoa(s.Quantity) }},
			{Header: "Price", Key: "price", Render: func(s types.StockItem) string { return money(s.Price) }},
			{Header: "Status", Key: "status", Value: func(s types.StockItem) string { return s.Status }},
		},
		SearchKeys: []grid.SearchKey[types.StockItem]{
			{Key: "name", Value: func(s types.StockItem) string { return s.Name }},
			{Key: "sku", Value: func(s types.StockItem) string { return s.SKU }},
		},
		Filters: []grid.Filter[types.StockItem]{
			{
				Key:     "status",
				Label:   "Status",
				Options: options(types.StockStatuses),
				Value:   func(s types.StockItem) string { return s.Status },
			},
		},
		Action: grid.BulkAction(LabelArchive, func(ids []string) error {
			_, err := fmt.Fprintf(out, "Archived %d items\n", len(ids))
			return err
		}),
		SearchPlaceholder: "Search products or SKU...",
	}
}
