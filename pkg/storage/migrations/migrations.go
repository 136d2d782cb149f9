package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql sqlserver/*.sql
var files embed.FS

// Up applies pending migrations for driver ("postgres", "sqlite" or
// "sqlserver") and returns the versions that were applied.
func Up(ctx context.Context, db *sql.DB, driver string) ([]int64, error) {
	p, err := provider(db, driver)
	if err != nil {
		return nil, err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

func provider(db *sql.DB, driver string) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch driver {
	case "postgres":
		dialect = goose.DialectPostgres
	case "sqlite":
		dialect = goose.DialectSQLite3
	case "sqlserver":
		dialect = goose.DialectMSSQL
	default:
		return nil, fmt.Errorf("migrations: unsupported driver %q", driver)
	}
	sub, err := fs.Sub(files, driver)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, db, sub)
}
