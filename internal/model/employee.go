package model

// Employee roles.
const (
	RoleAdmin       = "admin"
	RoleTechnician  = "technician"
	RoleSalesperson = "salesperson"
)

// Employee statuses.
const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee doubles as the login roster: authentication scans this table by
// email. There is no per-user credential; every account shares the demo
// password checked by the auth service.
type Employee struct {
	ID       string `gorm:"primaryKey"`
	Name     string `gorm:"index;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Role     string `gorm:"type:varchar(20);not null"`
	HireDate string `gorm:"type:varchar(10)"` // YYYY-MM-DD
	Phone    string
	Avatar   string
	Status   string `gorm:"type:varchar(10);not null;default:'active'"`
}
