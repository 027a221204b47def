package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStockStatus(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		threshold int
		want      string
	}{
		{"well above threshold", 30, 10, StockHealthy},
		{"just above threshold", 6, 5, StockHealthy},
		{"at threshold", 5, 5, StockLow},
		{"between half and threshold", 4, 5, StockLow},
		{"at half threshold", 2, 5, StockCritical},
		{"below half threshold", 1, 5, StockCritical},
		{"zero on hand", 0, 5, StockCritical},
		{"odd threshold rounds down", 3, 7, StockCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Quantity: tc.quantity, LowStockThreshold: tc.threshold}
			assert.Equal(t, tc.want, p.StockStatus())
		})
	}
}
