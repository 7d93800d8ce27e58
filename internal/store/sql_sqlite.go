package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/opeller/authgate/internal/config"
	"github.com/opeller/authgate/internal/logger"
)

// sqliteSchema bootstraps the credential store for the file-backed
// development database. Postgres uses goose migrations instead.
const sqliteSchema = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL,
    email TEXT NOT NULL,
    password_hash BLOB NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CONSTRAINT users_username_key UNIQUE (username),
    CONSTRAINT users_email_key UNIQUE (email)
);`

// NewConnectSQLite opens a file-backed SQLite credential store, used
// for local development and tests.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db lives in a file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		driver: DriverSQLite,
		logger: log,
	}, nil
}

func (db *DB) bootstrapSQLiteSchema() error {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("error bootstrapping sqlite schema: %w", err)
	}
	return nil
}

func createLocalDBFileIfNotExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return file.Close()
}

// sqliteUniqueViolation inspects err for a SQLite unique-constraint
// failure and, when found, reports which user column it concerns.
func sqliteUniqueViolation(err error) (column string, ok bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}

	switch {
	case strings.Contains(sqliteErr.Error(), "users.username"):
		return "username", true
	case strings.Contains(sqliteErr.Error(), "users.email"):
		return "email", true
	default:
		return "", true
	}
}
