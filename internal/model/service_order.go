package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service order statuses. Transitions are unconstrained: any status may
// follow any other via direct selection.
const (
	OrderPending         = "pending"
	OrderDiagnosing      = "diagnosing"
	OrderWaitingApproval = "waiting_approval"
	OrderInProgress      = "in_progress"
	OrderCompleted       = "completed"
	OrderDelivered       = "delivered"
	OrderCancelled       = "cancelled"
)

// OpenOrderStatuses is the fixed set the dashboard counts as pending work.
var OpenOrderStatuses = []string{OrderPending, OrderDiagnosing, OrderWaitingApproval, OrderInProgress}

// ServiceOrder is a repair ticket. The device password is stored in plaintext,
// matching the system being modeled.
type ServiceOrder struct {
	ID             string `gorm:"primaryKey"`
	CustomerID     string `gorm:"index;not null"`
	CustomerName   string `gorm:"not null"`
	DeviceType     string `gorm:"not null"`
	DeviceModel    string `gorm:"not null"`
	Defect         string `gorm:"not null"`
	IMEI           string
	DevicePassword string
	Budget         *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Notes          string
	Status         string `gorm:"type:varchar(20);index;not null;default:'pending'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	TechnicianID   *string
	TechnicianName *string
}
