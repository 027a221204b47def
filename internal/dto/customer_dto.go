package dto

// CustomerFilter is bound from the query string of GET /v1/customers.
// Q is matched as a case-insensitive substring of name, phone or email.
type CustomerFilter struct {
	Q string `form:"q"`
}

type CreateCustomerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateCustomerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Address  string `json:"address"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

type CustomerResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Birthday     string  `json:"birthday"`
	CreatedAt    string  `json:"createdAt"`
	Purchases    int     `json:"purchases"`
	LastPurchase *string `json:"lastPurchase"`
}
