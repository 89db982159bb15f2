package types

import "testing"

func TestStockItemReorder(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StockInStock, false},
		{StockLowStock, true},
		{StockOutOfStock, true},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := (StockItem{Status: tt.status}).Reorder(); got != tt.want {
				t.Errorf("Reorder() = %v, want %v", got, tt.want)
			}
		})
	}
}
