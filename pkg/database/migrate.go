package database

import (
	"errors"
	"fmt"
	"strings"

	"film-catalog/migrations"
	"film-catalog/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// MigrateDirection selects which way the schema moves.
type MigrateDirection string

const (
	MigrateUp   MigrateDirection = "up"
	MigrateDown MigrateDirection = "down"
)

// migrateURL rewrites a postgres URL to the scheme registered by the pgx/v5 driver.
func migrateURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// RunMigrations applies (or rolls back) the embedded schema migrations.
func RunMigrations(config utils.DatabaseConfig, direction MigrateDirection, log *zap.Logger) error {
	return RunMigrationsURL(ConnString(config), direction, log)
}

// RunMigrationsURL is RunMigrations for a postgres:// connection URL.
func RunMigrationsURL(dsn string, direction MigrateDirection, log *zap.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(dsn))
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("invalid migrate direction: %s", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Database schema already up to date", zap.String("direction", string(direction)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply migrations %s: %w", direction, err)
	}

	version, dirty, _ := m.Version()
	log.Info("Database migrations applied",
		zap.String("direction", string(direction)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
