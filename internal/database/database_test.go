package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leftovers-tracker/backend/config"
	"github.com/leftovers-tracker/backend/internal/models"
)

func TestNewSqlite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.sqlite"),
		LogLevel: "info",
	}

	db, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)

	// Migration must have created the leftovers table
	assert.True(t, db.Migrator().HasTable(&models.Leftover{}))
}
