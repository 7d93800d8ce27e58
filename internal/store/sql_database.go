package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/opeller/authgate/internal/config"
	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/migrations"
)

// Driver names accepted in [config.DB].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB wraps *sql.DB with the driver label needed for placeholder
// formatting and migration dialect selection.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Connect opens the credential store selected by cfg.DB.Driver.
func Connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.DB.Driver {
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DB, log)
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
}

// Migrate brings the schema up to date: goose migrations for postgres,
// embedded schema bootstrap for sqlite.
func (db *DB) Migrate() error {
	if db.driver == DriverPostgres {
		return migrations.Migrate(db.DB)
	}
	return db.bootstrapSQLiteSchema()
}

// builder returns a squirrel statement builder configured with the
// placeholder format of the active driver ($1 for postgres, ? for sqlite).
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
