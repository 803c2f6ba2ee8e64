package database

import (
	"fmt"

	"github.com/estateops/estate-api/internal/common/config"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// SQLite implements the Database interface using SQLite
type SQLite struct {
	*store
	cfg *config.DatabaseConfig
}

// NewSQLite creates a new SQLite instance
func NewSQLite(cfg *config.DatabaseConfig) (Database, error) {
	gormDB, err := gorm.Open(sqlite.Open(cfg.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(gormDB); err != nil {
		return nil, err
	}

	return &SQLite{store: &store{db: gormDB}, cfg: cfg}, nil
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Agent{},
		&Owner{},
		&Tenant{},
		&Inventory{},
		&Contract{},
		&SellInventory{},
		&RentalInventory{},
		&OwnerSignContract{},
		&TenantSignContract{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
