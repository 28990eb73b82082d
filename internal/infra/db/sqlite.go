package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger/config"
)

// NewSQLiteConnection opens (creating if needed) the database file at cfg.Path.
// ":memory:" opens a private in-memory database.
func NewSQLiteConnection(cfg *config.SQLiteConfig) (*Database, error) {
	if cfg.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// sqlite serializes writers; one connection keeps :memory: databases shared.
	sqlDB.SetMaxOpenConns(1)

	database := &Database{db: db, driver: config.StoreSQLite}
	if err := database.Ping(context.Background()); err != nil {
		return nil, err
	}

	slog.Info("Database connection established", "driver", database.driver, "path", cfg.Path)
	return database, nil
}
