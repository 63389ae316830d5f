package database_test

import (
	"testing"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database/databasetest"
)

func TestMigrate_CreatesMeetingsTable(t *testing.T) {
	db := databasetest.New(t)

	assert.True(t, db.Migrator().HasTable("meetings"))

	// Already applied
	n, err := database.Migrate(db, "sqlite", migrate.Up)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestMigrate_Down(t *testing.T) {
	db := databasetest.New(t)

	n, err := database.Migrate(db, "sqlite", migrate.Down)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, db.Migrator().HasTable("meetings"))
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", database.Dialect("sqlite"))
	assert.Equal(t, "postgres", database.Dialect("postgres"))
}
