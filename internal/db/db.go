package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	_ "modernc.org/sqlite"             // registers the "sqlite" database/sql driver

	"github.com/yigit/enrollment/internal/config"
	"github.com/yigit/enrollment/internal/pkg/logger"
)

// Querier is satisfied by both *sql.DB and *sql.Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB database connection structure
type DB struct {
	*sql.DB
	driver string
	sb     squirrel.StatementBuilderType
}

// New opens the store selected by cfg.Database.Driver and verifies the connection
func New(cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		conn *sql.DB
		err  error
		sb   squirrel.StatementBuilderType
	)

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.Database.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		conn, err = sql.Open("sqlite", cfg.GetSQLiteDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite serializes writers; a single connection keeps read-then-write
		// transactions from failing with SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
		sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	case config.DriverPostgres:
		conn, err = sql.Open("pgx", cfg.GetPostgresConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		conn.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		conn.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
		sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &DB{DB: conn, driver: cfg.Database.Driver, sb: sb}, nil
}

// Driver returns the configured driver name (sqlite or postgres)
func (db *DB) Driver() string {
	return db.driver
}

// Builder returns a squirrel statement builder using the driver's placeholder format
func (db *DB) Builder() squirrel.StatementBuilderType {
	return db.sb
}

// Trace logs an executed statement at debug level
func (db *DB) Trace(query string, args []any) {
	logger.Debug().Str("sql", query).Interface("args", args).Msg("Executing query")
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs a function within a transaction
func (db *DB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
