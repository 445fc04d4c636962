package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Supported driver names.
const (
	DriverPgx    = "pgx"
	DriverSQLite = "sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens a single-connection database for creds using driver and pings it.
func Open(ctx context.Context, driver string, creds Credentials) (*sql.DB, error) {
	var db *sql.DB
	switch driver {
	case DriverPgx:
		cfg, err := pgx.ParseConfig(creds.URI)
		if err != nil {
			return nil, fmt.Errorf("parse connection uri: %w", err)
		}
		if creds.User != "" {
			cfg.User = creds.User
		}
		if creds.Password != "" {
			cfg.Password = creds.Password
		}
		db = stdlib.OpenDB(*cfg)
	case DriverSQLite:
		var err error
		db, err = sql.Open("sqlite", sqliteDSN(creds.URI))
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
}

// Migrate applies the embedded migrations for driver.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(migrations)

	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverPgx:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}
