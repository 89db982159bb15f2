package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

// Stats writes the four dashboard stat cards.
func Stats(w io.Writer, s types.DashboardStats) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total Revenue\t%s\n", Money(s.TotalRevenue))
	p.Fprintf(tw, "Active Orders\t%d\n", s.ActiveOrders)
	p.Fprintf(tw, "Low Stock Alerts\t%d\n", s.LowStockAlerts)
	p.Fprintf(tw, "Total Crew\t%d\n", s.TotalCrew)
	return tw.Flush()
}

// Money formats d as dollars with grouped thousands and two decimals,
// e.g. $125,430.50.
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	d = d.Round(2)
	_, cents, _ := strings.Cut(d.StringFixed(2), ".")
	whole := message.NewPrinter(language.English).Sprintf("%d", d.Truncate(0).IntPart())
	return sign + "$" + whole + "." + cents
}
