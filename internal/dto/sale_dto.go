package dto

import "github.com/shopspring/decimal"

// SaleFilter is bound from the query string of GET /v1/sales.
// Q matches sale ID, customer name or payment method.
type SaleFilter struct {
	Q string `form:"q"`
}

type SaleItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
}

type RegisterSaleRequest struct {
	CustomerID    *string           `json:"customerId"`
	Items         []SaleItemRequest `json:"items"         validate:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=credit_card debit_card cash pix"`
}

// UpdateSaleRequest replaces the entire item list and recomputes the total;
// there is no per-line diffing.
type UpdateSaleRequest struct {
	CustomerID    *string           `json:"customerId"`
	Items         []SaleItemRequest `json:"items"         validate:"required,min=1,dive"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=credit_card debit_card cash pix"`
	Status        string            `json:"status"        validate:"required,oneof=completed canceled"`
}

type SaleItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    *string            `json:"customerId"`
	CustomerName  *string            `json:"customerName"`
	Date          string             `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	EmployeeID    string             `json:"employeeId"`
	EmployeeName  string             `json:"employeeName"`
	Status        string             `json:"status"`
}
