// Package db provides database functionality for unitgraph.
package db

import (
	"database/sql"
	"embed"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/unitgraph/unitgraph/internal/config"
	"github.com/unitgraph/unitgraph/internal/log"

	// Register migrate's sqlite3 driver.
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"

	// Register sqlite3 driver.
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// GetConnectionString returns the database connection string.
func GetConnectionString(cfg config.Settings) string {
	return "sqlite3://" + cfg.CacheDBPath
}

// Connect establishes a connection to the factor cache database.
func Connect() (*sql.DB, error) {
	// Remove sqlite3:// prefix if present for direct SQL connection
	dbPath := strings.TrimPrefix(config.GetConfig().CacheDBPath, "sqlite3://")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	log.GetLogger().Debug("Connected to factor cache database", "path", dbPath)

	return db, nil
}

// Up runs database migrations to latest version.
func Up(cfg config.Settings) error {
	m, err := getMigrationInstance(cfg)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			log.GetLogger().Debug("No new database migrations to apply")
			return nil
		}
		return err
	}

	log.GetLogger().Debug("Database migrations applied successfully")
	return nil
}

// Down rolls back all database migrations.
func Down(cfg config.Settings) error {
	m, err := getMigrationInstance(cfg)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil {
		if err == migrate.ErrNoChange {
			log.GetLogger().Debug("No database migrations to roll back")
			return nil
		}
		return err
	}

	log.GetLogger().Debug("Database migrations rolled back successfully")
	return nil
}

func getMigrationInstance(cfg config.Settings) (*migrate.Migrate, error) {
	dbConnStr := GetConnectionString(cfg)
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dbConnStr)
	if err != nil {
		return nil, err
	}

	m.Log = &migrationLogger{}

	return m, nil
}

type migrationLogger struct{}

func (l *migrationLogger) Printf(format string, v ...interface{}) {
	log.GetLogger().Debug("Migration: "+format, v...)
}

func (l *migrationLogger) Verbose() bool {
	return true
}
