// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"path/filepath"
	"testing"

	"expense-ledger/internal/config"
	"expense-ledger/internal/database"

	"gorm.io/gorm"
)

// NewDB opens a migrated SQLite database in a temporary directory that is
// removed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
