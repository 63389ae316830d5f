// Package databasetest opens throwaway databases for tests
package databasetest

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// New opens a migrated SQLite database in a temporary directory
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Environment: "test",
		Database: config.DatabaseConfig{
			Driver: config.DatabaseDriverSQLite,
			Path:   filepath.Join(t.TempDir(), "test.db"),
		},
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db, cfg.Database.Driver); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = database.CloseDB(db) })

	return db
}
