// Package fixtures holds the sample dataset that seeds a fresh store.
// Every accessor returns a new copy, so callers may mutate the result.
package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/nexus/pkg/types"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Stock returns the six sample inventory lines.
func Stock() []types.StockItem {
	return []types.StockItem{
		{ID: "1", Name: "Wireless Headphones", SKU: "WH-001", Category: "Electronics", Quantity: 45, Price: money("129.99"), Status: types.StockInStock, LastUpdated: "2023-10-25"},
		{ID: "2", Name: "Ergonomic Mouse", SKU: "EM-002", Category: "Accessories", Quantity: 12, Price: money("49.99"), Status: types.StockLowStock, LastUpdated: "2023-10-24"},
		{ID: "3", Name: "Mechanical Keyboard", SKU: "MK-003", Category: "Electronics", Quantity: 8, Price: money("159.99"), Status: types.StockLowStock, LastUpdated: "2023-10-23"},
		{ID: "4", Name: "USB-C Monitor", SKU: "UM-004", Category: "Electronics", Quantity: 0, Price: money("349.99"), Status: types.StockOutOfStock, LastUpdated: "2023-10-20"},
		{ID: "5", Name: "Laptop Stand", SKU: "LS-005", Category: "Accessories", Quantity: 120, Price: money("29.99"), Status: types.StockInStock, LastUpdated: "2023-10-26"},
		{ID: "6", Name: "Webcam 4K", SKU: "WC-006", Category: "Electronics", Quantity: 33, Price: money("89.99"), Status: types.StockInStock, LastUpdated: "2023-10-25"},
	}
}

// Sales returns the four sample orders.
func Sales() []types.SaleRecord {
	return []types.SaleRecord{
		{ID: "101", CustomerName: "Acme Corp", Items: []string{"Wireless Headphones x5"}, TotalAmount: money("649.95"), Date: "2023-10-26", Status: types.SaleCompleted},
		{ID: "102", CustomerName: "John Doe", Items: []string{"Ergonomic Mouse"}, TotalAmount: money("49.99"), Date: "2023-10-26", Status: types.SalePending},
		{ID: "103", CustomerName: "TechStart Inc", Items: []string{"Mechanical Keyboard x2", "Monitor"}, TotalAmount: money("669.97"), Date: "2023-10-25", Status: types.SaleCompleted},
		{ID: "104", CustomerName: "Sarah Smith", Items: []string{"Laptop Stand"}, TotalAmount: money("29.99"), Date: "2023-10-25", Status: types.SaleRefunded},
	}
}

// Crew returns the four sample employees.
func Crew() []types.CrewMember {
	return []types.CrewMember{
		{ID: "c1", Name: "Alice Johnson", Role: "Store Manager", Department: "Management", Status: types.CrewActive, Email: "alice@nexus.com", PerformanceScore: 92},
		{ID: "c2", Name: "Bob Smith", Role: "Sales Associate", Department: "Sales", Status: types.CrewActive, Email: "bob@nexus.com", PerformanceScore: 88},
		{ID: "c3", Name: "Charlie Brown", Role: "Inventory Specialist", Department: "Stock", Status: types.CrewOnLeave, Email: "charlie@nexus.com", PerformanceScore: 75},
		{ID: "c4", Name: "Diana Prince", Role: "Senior Sales", Department: "Sales", Status: types.CrewActive, Email: "diana@nexus.com", PerformanceScore: 98},
	}
}

// Stats returns the fixed headline figures reported by the mock service.
func Stats() types.DashboardStats {
	return types.DashboardStats{
		TotalRevenue:   money("125430.50"),
		ActiveOrders:   14,
		LowStockAlerts: 3,
		TotalCrew:      12,
	}
}
