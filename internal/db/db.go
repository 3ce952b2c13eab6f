package db

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/valiholz845-byte/Rechnungs-App/internal/models"
)

// Open connects by DSN scheme: postgres:// and postgresql:// DSNs use the
// postgres driver, anything else is treated as a sqlite path or URI.
func Open(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates the schema for all entities.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.Customer{},
		&models.Company{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Todo{},
	)
}
