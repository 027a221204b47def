package model

// Customer is a shop customer record.
// Purchases and LastPurchase are denormalized aggregates copied at write time;
// they are not recomputed from the sales table.
type Customer struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"index;not null"`
	Phone        string `gorm:"not null"`
	Email        string `gorm:"not null"`
	Address      string
	Birthday     string `gorm:"type:varchar(10)"` // YYYY-MM-DD
	RegisteredAt string `gorm:"type:varchar(10)"` // YYYY-MM-DD
	Purchases    int    `gorm:"not null;default:0"`
	LastPurchase *string
}
