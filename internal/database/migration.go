package database

import (
	"fmt"

	"github.com/bkromhout/balances/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Balance{},
		&models.Transaction{},
		&models.Category{},
		&models.Sequence{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
