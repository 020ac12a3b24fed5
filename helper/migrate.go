package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"todolist/config"
	"todolist/infras/database"
	"todolist/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var errUnknownAction = errors.New("unknown migration action")

// DatabaseURL renders the golang-migrate URL for the configured driver.
func DatabaseURL(cfg *config.Config) (string, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		return fmt.Sprintf("sqlite3://%s?x-migrations-table=%s",
			cfg.DB.SQLite.Path,
			url.QueryEscape(cfg.DB.MigrationTable),
		), nil
	case config.DriverPostgres:
		pg := cfg.DB.Postgres

		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
			pg.Username,
			pg.Password,
			net.JoinHostPort(pg.Host, pg.Port),
			pg.Name,
			pg.SSLMode,
			url.QueryEscape(cfg.DB.MigrationTable),
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, cfg.DB.Driver)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	if cfg.DB.Driver == config.DriverSQLite {
		if err := database.EnsureDirForSQLite(cfg.DB.SQLite.Path); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	databaseURL, err := DatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	log.Info().Str("action", action).Str("driver", cfg.DB.Driver).Msg("Database migrations completed successfully")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
