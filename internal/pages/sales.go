package pages

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// SalesConfig describes the orders table. Invoice generation reports the
// number of orders invoiced to out.
func SalesConfig(out io.Writer) grid.Config[types.SaleRecord] {
	return grid.Config[types.SaleRecord]{
		Columns: []grid.Column[types.SaleRecord]{
			{Header: "Order ID", Key: "id", Render: func(s types.SaleRecord) string { return "#" + s.ID }},
			{Header: "Customer", Key: "customer_name", Value: func(s types.SaleRecord) string { return s.CustomerName }},
			{Header: "Items", Key: "items", Render: func(s types.SaleRecord) string { return joinItems(s.Items) }},
			{Header: "Date", Key: "date", Value: func(s types.SaleRecord) string { return s.Date }},
			{Header: "Total", Key: "total_amount", Render: func(s types.SaleRecord) string { return money(s.TotalAmount) }},
			{Header: "Status", Key: "status", Value: func(s types.SaleRecord) string { return s.Status }},
		},
		SearchKeys: []grid.SearchKey[types.SaleRecord]{
			{Key: "id", Value: func(s types.SaleRecord) string { return s.ID }},
			{Key: "customer_name", Value: func(s types.SaleRecord) string { return s.CustomerName }},
		},
		Filters: []grid.Filter[types.SaleRecord]{
			{
				Key:     "status",
				Label:   "Order Status",
				Options: options(types.SaleStatuses),
				Value:   func(s types.SaleRecord) string { return s.Status },
			},
		},
		Action: grid.BulkAction(LabelInvoice, func(ids []string) error {
			_, err := fmt.Fprintf(out, "Generated invoices for %d orders\n", len(ids))
			return err
		}),
		SearchPlaceholder: "Search order ID or customer...",
	}
}
