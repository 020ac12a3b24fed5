package helper_test

import (
	"path/filepath"
	"testing"
	"todolist/config"
	"todolist/helper"
	"todolist/infras/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.MaxRetry = 1
	cfg.DB.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "todolist.db")

	return cfg
}

func tableNames(t *testing.T, cfg *config.Config) []string {
	t.Helper()

	conn, err := database.Open(cfg)
	require.NoError(t, err)

	defer conn.Close()

	var names []string
	err = conn.Select(&names, "SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE '%_tasks' ORDER BY name")
	require.NoError(t, err)

	return names
}

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.Path = "./todolist.db"

	url, err := helper.DatabaseURL(cfg)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3://./todolist.db?x-migrations-table=schema_migrations", url)

	cfg.DB.Driver = config.DriverPostgres
	cfg.DB.Postgres.Username = "todo"
	cfg.DB.Postgres.Password = "secret"
	cfg.DB.Postgres.Host = "db"
	cfg.DB.Postgres.Port = "5432"
	cfg.DB.Postgres.Name = "todolist"
	cfg.DB.Postgres.SSLMode = "disable"

	url, err = helper.DatabaseURL(cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres://todo:secret@db:5432/todolist?sslmode=disable&x-migrations-table=schema_migrations", url)

	cfg.DB.Driver = "oracle"
	_, err = helper.DatabaseURL(cfg)
	assert.Error(t, err)
}

func TestRunner_SQLite(t *testing.T) {
	cfg := sqliteConfig(t)

	require.NoError(t, helper.Up(cfg))
	assert.Equal(t, []string{"personal_tasks", "shopping_tasks", "work_tasks"}, tableNames(t, cfg))

	require.NoError(t, helper.Up(cfg), "second up must be a no-op")

	require.NoError(t, helper.Down(cfg))
	assert.Empty(t, tableNames(t, cfg))

	require.NoError(t, helper.StepUp(cfg))
	assert.Len(t, tableNames(t, cfg), 3)
}

func TestRunner_CreatesNestedSQLiteDir(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "data", "nested", "todolist.db")

	require.NoError(t, helper.Up(cfg))
	assert.FileExists(t, cfg.DB.SQLite.Path)
	assert.Len(t, tableNames(t, cfg), 3)
}

func TestRunner_UnknownAction(t *testing.T) {
	cfg := sqliteConfig(t)

	assert.Error(t, helper.Runner(cfg, "sideways"))
}
