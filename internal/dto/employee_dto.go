package dto

// EmployeeFilter is bound from the query string of GET /v1/employees.
// Q matches name, email, phone or role.
type EmployeeFilter struct {
	Q string `form:"q"`
}

type CreateEmployeeRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,oneof=admin technician salesperson"`
	HireDate string `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"   validate:"required,oneof=active inactive"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

// DeleteEmployeeRequest carries the password re-entry required when the
// target is an administrator. Ignored for any other role.
type DeleteEmployeeRequest struct {
	Password string `json:"password"`
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	HireDate string `json:"hireDate"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
}
