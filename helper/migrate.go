package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"nutricoach/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStepUp = "step-up"
	MigrateDrop   = "drop"
)

func dbName(cfg *config.Config) string {
	name := cfg.DB.Postgres.Write.Name
	if cfg.DB.Postgres.Prefix != "" {
		return cfg.DB.Postgres.Prefix + name
	}

	return name
}

func connect(cfg *config.Config) (*migrate.Migrate, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		cfg.DB.Postgres.Write.Username,
		cfg.DB.Postgres.Write.Password,
		net.JoinHostPort(cfg.DB.Postgres.Write.Host, cfg.DB.Postgres.Write.Port),
		dbName(cfg),
		cfg.DB.Postgres.Write.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(
		"file://migrations/postgres",
		connectionString,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Migrate runs the requested migration action against the write database.
func Migrate(cfg *config.Config, action string) error {
	mig, err := connect(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case MigrateUp:
		err = mig.Up()
	case MigrateStepUp:
		err = mig.Steps(1)
	case MigrateDown:
		err = mig.Steps(-1)
	case MigrateDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration action %q: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}
