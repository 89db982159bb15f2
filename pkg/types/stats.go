package types

import "github.com/shopspring/decimal"

// DashboardStats are the headline figures of the dashboard.
type DashboardStats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	ActiveOrders   int             `json:"active_orders"`
	LowStockAlerts int             `json:"low_stock_alerts"`
	TotalCrew      int             `json:"total_crew"`
}
