package database

//nolint:revive
import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
	"todolist/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	sqliteMaxOpenConnection   = 1
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10

	sqliteBusyTimeoutMillis = 5000
)

// Connection is the single pool shared by every repository.
type Connection struct {
	*sqlx.DB
	Driver string
}

func New(cfg *config.Config) *Connection {
	conn, err := Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("Failed to open database")
	}

	return conn
}

// Open connects to the configured driver, retrying MaxRetry times.
func Open(cfg *config.Config) (*Connection, error) {
	driver := cfg.DB.Driver

	descriptor, err := DataSource(cfg)
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		if err := EnsureDirForSQLite(cfg.DB.SQLite.Path); err != nil {
			return nil, err
		}
	}

	maxRetry := max(cfg.DB.MaxRetry, 1)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driver, descriptor)
		if err == nil {
			configurePool(driver, sqlDB)

			log.
				Info().
				Str("driver", driver).
				Str("target", target(cfg)).
				Msg("Connected to database")

			return &Connection{DB: sqlDB, Driver: driver}, nil
		}

		log.
			Error().
			Err(err).
			Str("driver", driver).
			Str("target", target(cfg)).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry+1 < maxRetry {
			time.Sleep(time.Duration(cfg.DB.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed to connect to %s after %d attempts", driver, maxRetry)
}

// DataSource builds the driver specific DSN.
func DataSource(cfg *config.Config) (string, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", cfg.DB.SQLite.Path, sqliteBusyTimeoutMillis), nil
	case config.DriverPostgres:
		pg := cfg.DB.Postgres

		return fmt.Sprintf(
			"postgres://%s:%s@%s/%s?sslmode=%s",
			pg.Username,
			pg.Password,
			net.JoinHostPort(pg.Host, pg.Port),
			pg.Name,
			pg.SSLMode,
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func configurePool(driver string, db *sqlx.DB) {
	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(sqliteMaxOpenConnection)

		return
	}

	db.SetMaxIdleConns(postgresMaxIdleConnection)
	db.SetMaxOpenConns(postgresMaxOpenConnection)
}

func target(cfg *config.Config) string {
	if cfg.DB.Driver == config.DriverSQLite {
		return cfg.DB.SQLite.Path
	}

	return net.JoinHostPort(cfg.DB.Postgres.Host, cfg.DB.Postgres.Port) + "/" + cfg.DB.Postgres.Name
}

// EnsureDirForSQLite creates the parent directory of the database file.
func EnsureDirForSQLite(path string) error {
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}

	dir := filepath.Dir(strings.TrimPrefix(path, "file:"))
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}

	return nil
}
