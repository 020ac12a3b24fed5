package main

import (
	"path/filepath"
	"testing"
	"todolist/config"
	"todolist/infras/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverPostgres
	cfg.DB.MaxRetry = 1
	cfg.DB.MigrationTable = "schema_migrations"

	return cfg
}

func countTaskTables(t *testing.T, path string) int {
	t.Helper()

	cfg := testConfig()
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.SQLite.Path = path

	conn, err := database.Open(cfg)
	require.NoError(t, err)

	defer conn.Close()

	var count int
	require.NoError(t, conn.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name LIKE '%_tasks'"))

	return count
}

func TestMigrateCommand_UpAndDrop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todolist.db")

	cmd := newRootCommand(testConfig)
	cmd.SetArgs([]string{"up", "--driver", "sqlite3", "--sqlite-path", path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 3, countTaskTables(t, path))

	cmd = newRootCommand(testConfig)
	cmd.SetArgs([]string{"drop", "--driver", "sqlite3", "--sqlite-path", path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 0, countTaskTables(t, path))
}

func TestMigrateCommand_RejectsArguments(t *testing.T) {
	cmd := newRootCommand(testConfig)
	cmd.SetArgs([]string{"up", "extra"})

	assert.Error(t, cmd.Execute())
}

func TestMigrateCommand_UnknownSubcommand(t *testing.T) {
	cmd := newRootCommand(testConfig)
	cmd.SetArgs([]string{"sideways"})

	assert.Error(t, cmd.Execute())
}
