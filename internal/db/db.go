// Package db opens the PostgreSQL connection and runs schema migration for
// the mutable state store (rounds, vesting pools, whitelist).
package db

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	roundmodel "github.com/tokenvote-labs/tokenvote-backend/internal/round/model"
	vestingmodel "github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

// Open connects to PostgreSQL. GORM's own logger stays silent; query
// outcomes surface through the repository metrics instead.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		logger.Config{
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the tables for all persisted models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roundmodel.Round{},
		&vestingmodel.VestingAccount{},
		&vestingmodel.WhitelistEntry{},
	)
}
