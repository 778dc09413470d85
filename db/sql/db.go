// Package sql runs word list queries on a SQL database.
package sql

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/jacobpatterson1549/wordfilter/db"
)

type (
	// Database is a SQL database with a timeout for each operation.
	Database struct {
		DB *sql.DB
		db.Config
	}

	// DatabaseConfig contains the properties to connect to a SQL database.
	DatabaseConfig struct {
		// DriverName is the name of the registered database driver, such as "postgres".
		DriverName string
		// DatabaseURL is the data source name passed to the driver.
		DatabaseURL string
		// QueryPeriod is the amount of time each operation is allowed to run.
		QueryPeriod time.Duration
	}
)

// NewDatabase opens a database with the driver.
// The connection is not verified until the first operation.
func (cfg DatabaseConfig) NewDatabase() (*Database, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating SQL database: validation: %w", err)
	}
	sqlDB, err := sql.Open(cfg.DriverName, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	d := Database{
		DB: sqlDB,
		Config: db.Config{
			QueryPeriod: cfg.QueryPeriod,
		},
	}
	return &d, nil
}

// validate ensures the configuration has no errors.
func (cfg DatabaseConfig) validate() error {
	switch {
	case len(cfg.DriverName) == 0:
		return fmt.Errorf("driver name required")
	case len(cfg.DatabaseURL) == 0:
		return fmt.Errorf("database url required")
	case cfg.QueryPeriod <= 0:
		return fmt.Errorf("positive query period required")
	}
	return nil
}

// Setup initializes the database by reading the files and executing their contents as raw queries.
func (d Database) Setup(ctx context.Context, files []io.Reader) error {
	queries := make([]Query, len(files))
	for i, f := range files {
		b, err := io.ReadAll(f)
		if err != nil {
			return fmt.Errorf("reading sql setup query %v: %w", i, err)
		}
		queries[i] = RawQuery(b)
	}
	if err := d.Exec(ctx, queries...); err != nil {
		return fmt.Errorf("running setup queries: %w", err)
	}
	return nil
}

// Exec runs the queries in a single transaction.
// ExecFunction queries must each change exactly one row or the transaction is rolled back.
func (d Database) Exec(ctx context.Context, queries ...Query) error {
	ctx, cancelFunc := context.WithTimeout(ctx, d.QueryPeriod)
	defer cancelFunc()
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	for i, q := range queries {
		if err := exec(ctx, tx, q); err != nil {
			err = fmt.Errorf("executing query %v: %w", i, err)
			if err2 := tx.Rollback(); err2 != nil {
				return fmt.Errorf("rolling back transaction due to %v: %w", err, err2)
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// exec runs the query in the transaction.
func exec(ctx context.Context, tx *sql.Tx, q Query) error {
	result, err := tx.ExecContext(ctx, q.Cmd(), q.Args()...)
	if err != nil {
		return err
	}
	f, ok := q.(ExecFunction)
	if !ok {
		return nil
	}
	n, err := result.RowsAffected()
	switch {
	case err != nil:
		return fmt.Errorf("getting rows affected by %s: %w", f.name, err)
	case n != 1:
		return fmt.Errorf("wanted to update 1 row, but updated %d when calling %s", n, f.name)
	}
	return nil
}

// Close closes the database connections.
func (d Database) Close() error {
	return d.DB.Close()
}
