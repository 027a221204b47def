package infra

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/guilhermemendeslima/clickcell-system/internal/model"
)

// NewDatabase opens the in-memory SQLite store and creates the schema.
// The default DSN is `file::memory:?cache=shared`, so the record sets live
// only for the lifetime of the process — a restart reseeds from scratch.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// A shared-cache memory database disappears once its last connection
	// closes; a single pooled connection keeps it alive and serializes
	// writes, which SQLite wants anyway.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Sale{},
		&model.SaleItem{},
		&model.ServiceOrder{},
		&model.Employee{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
