package database

import (
	"path/filepath"
	"testing"

	"expense-ledger/internal/config"
	"expense-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")

	db, err := Init(config.DatabaseConfig{Path: path})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))

	for _, model := range []any{&models.User{}, &models.Expense{}, &models.AuditLog{}} {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "Email"))
}
