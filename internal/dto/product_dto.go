package dto

import "github.com/shopspring/decimal"

// ProductFilter is bound from the query string of GET /v1/products.
// Category narrows first; Q then matches name, description or SKU.
type ProductFilter struct {
	Q        string `form:"q"`
	Category string `form:"category,default=all" validate:"omitempty,oneof=all smartphones accessories parts tablets"`
}

type CreateProductRequest struct {
	Name              string          `json:"name"              validate:"required"`
	Description       string          `json:"description"`
	Category          string          `json:"category"          validate:"required,oneof=smartphones accessories parts tablets"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"     validate:"min=0"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"      validate:"min=0"`
	Quantity          int             `json:"quantity"          validate:"min=0"`
	LowStockThreshold int             `json:"lowStockThreshold" validate:"min=0"`
	ImageURL          string          `json:"imageUrl"`
	SKU               string          `json:"sku"               validate:"required"`
}

type UpdateProductRequest = CreateProductRequest

type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	ImageURL          string          `json:"imageUrl"`
	SKU               string          `json:"sku"`
	CreatedAt         string          `json:"createdAt"`
	// StockStatus is derived per request: critical | low | healthy
	StockStatus string `json:"stockStatus"`
}
