package dto

import "github.com/shopspring/decimal"

// ServiceOrderFilter is bound from the query string of GET /v1/service-orders.
// Status narrows first; Q then matches order ID, customer name, device model
// or defect.
type ServiceOrderFilter struct {
	Q      string `form:"q"`
	Status string `form:"status,default=all" validate:"omitempty,oneof=all pending diagnosing waiting_approval in_progress completed delivered cancelled"`
}

type CreateServiceOrderRequest struct {
	CustomerID     string           `json:"customerId"     validate:"required"`
	DeviceType     string           `json:"deviceType"     validate:"required"`
	DeviceModel    string           `json:"deviceModel"    validate:"required"`
	Defect         string           `json:"defect"         validate:"required"`
	IMEI           string           `json:"imei"`
	DevicePassword string           `json:"devicePassword"`
	Budget         *decimal.Decimal `json:"budget"`
	Notes          string           `json:"notes"`
	TechnicianID   *string          `json:"technicianId"`
}

// UpdateServiceOrderRequest accepts any status for any current status;
// transitions are deliberately unconstrained.
type UpdateServiceOrderRequest struct {
	DeviceType     string           `json:"deviceType"     validate:"required"`
	DeviceModel    string           `json:"deviceModel"    validate:"required"`
	Defect         string           `json:"defect"         validate:"required"`
	IMEI           string           `json:"imei"`
	DevicePassword string           `json:"devicePassword"`
	Budget         *decimal.Decimal `json:"budget"`
	Notes          string           `json:"notes"`
	Status         string           `json:"status"         validate:"required,oneof=pending diagnosing waiting_approval in_progress completed delivered cancelled"`
	TechnicianID   *string          `json:"technicianId"`
}

type ServiceOrderResponse struct {
	ID             string           `json:"id"`
	CustomerID     string           `json:"customerId"`
	CustomerName   string           `json:"customerName"`
	DeviceType     string           `json:"deviceType"`
	DeviceModel    string           `json:"deviceModel"`
	Defect         string           `json:"defect"`
	IMEI           string           `json:"imei"`
	DevicePassword string           `json:"devicePassword"`
	Budget         *decimal.Decimal `json:"budget"`
	Notes          string           `json:"notes"`
	Status         string           `json:"status"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
	TechnicianID   *string          `json:"technicianId"`
	TechnicianName *string          `json:"technicianName"`
}
