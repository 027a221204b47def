package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the read-only aggregation over the four record sets,
// recomputed on every request.
type DashboardResponse struct {
	// TotalSales sums every sale total regardless of status — canceled sales
	// included, exactly as the system being modeled computes it.
	TotalSales    decimal.Decimal        `json:"totalSales"`
	Customers     int64                  `json:"customers"`
	StockUnits    int                    `json:"stockUnits"`
	LowStock      []ProductResponse      `json:"lowStock"`
	PendingOrders int                    `json:"pendingOrders"`
	RecentSales   []SaleResponse         `json:"recentSales"`
	RecentOrders  []ServiceOrderResponse `json:"recentOrders"`
}
