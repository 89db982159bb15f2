// Package pages holds the table configuration of each browsable page:
// columns, searchable fields, filters and the page's bulk action.
package pages

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/nexus/pkg/grid"
	"github.com/mesh-intelligence/nexus/pkg/types"
)

// Page names accepted by the CLI.
const (
	Stock = types.ResourceStock
	Sales = types.ResourceSales
	Crew  = types.ResourceCrew
)

// Names lists the browsable pages in navigation order.
var Names = types.Resources

// Action labels.
const (
	LabelArchive = "Archive Selected"
	LabelInvoice = "Generate Invoice"
	LabelDelete  = "Delete Selected"
)

// money formats an amount with a dollar sign and two decimals.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// options builds one filter option per value, labelled by the value itself.
func options(values []string) []grid.Option {
	out := make([]grid.Option, 0, len(values))
	for _, v := range values {
		out = append(out, grid.Option{Label: v, Value: v})
	}
	return out
}

func joinItems(items []string) string {
	return strings.Join(items, ", ")
}

func percent(n int) string {
	return fmt.Sprintf("%d%%", n)
}
