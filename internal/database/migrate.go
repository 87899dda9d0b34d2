package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/noteflow/internal/config"
	"github.com/at-ishikawa/noteflow/schemas"
)

// Migrate applies every pending migration embedded in schemas.Migrations.
// It returns the schema version after the run.
func Migrate(db *sqlx.DB, driver string) (uint, error) {
	source, err := iofs.New(schemas.Migrations, "migrations")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case config.DriverSQLite:
		target, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	case config.DriverMySQL, "":
		driver = config.DriverMySQL
		target, err = migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	default:
		return 0, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return 0, fmt.Errorf("create %s migration driver: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		return 0, fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}
