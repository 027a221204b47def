package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the counter.
const (
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentCash       = "cash"
	PaymentPix        = "pix"
)

// Sale statuses.
const (
	SaleCompleted = "completed"
	SaleCanceled  = "canceled"
)

// Sale is a counter sale. CustomerName and EmployeeName are denormalized
// copies taken at registration time.
type Sale struct {
	ID            string  `gorm:"primaryKey"`
	CustomerID    *string `gorm:"index"`
	CustomerName  *string
	Date          time.Time       `gorm:"index;not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	EmployeeID    string          `gorm:"not null"`
	EmployeeName  string          `gorm:"not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'completed'"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// SaleItem is one line of a sale. Subtotal = Quantity × UnitPrice, computed
// when the sale is registered or edited.
type SaleItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	SaleID      string          `gorm:"index;not null"`
	ProductID   string          `gorm:"not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}
