package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sqlDrivers maps configured driver names to registered database/sql driver names.
var sqlDrivers = map[string]string{
	DriverSQLite:   "sqlite",
	DriverPostgres: "pgx",
}

// Open creates a connection pool for driver ("sqlite" or "postgres") and verifies it with a ping.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	sqlDriver, ok := sqlDrivers[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	pool, err := sqlx.ConnectContext(ctx, sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database connection: %w", driver, err)
	}

	if driver == DriverSQLite {
		// A single connection keeps ":memory:" databases shared and serializes SQLite writers.
		pool.SetMaxOpenConns(1)
	} else {
		pool.SetMaxOpenConns(10)
		pool.SetMaxIdleConns(5)
	}

	slog.InfoContext(ctx, "Connected to database", "db.driver", driver)
	return pool, nil
}

var schemas = map[string][]string{
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			hashed_password TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS user_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL,
			question TEXT NOT NULL,
			response TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_user_requests_user_id ON user_requests (user_id);`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			hashed_password TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS user_requests (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			question TEXT NOT NULL,
			response TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_user_requests_user_id ON user_requests (user_id);`,
	},
}

// InitSchema creates the users and user_requests tables if they do not exist.
// user_requests.user_id is deliberately not a foreign key: it stores the token's identity claim.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	driver := DriverSQLite
	if db.DriverName() == sqlDrivers[DriverPostgres] {
		driver = DriverPostgres
	}

	for _, stmt := range schemas[driver] {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	slog.InfoContext(ctx, "Database schema verified", "db.driver", driver)
	return nil
}
