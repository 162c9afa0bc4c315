package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/learning-tracker/migrations"
)

// Migrate applies the embedded goose migrations through the given pool.
// It returns the number of migrations applied by this call.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	// goose requires *sql.DB; borrow one backed by the same pool.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.Postgres())
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	return len(results), nil
}
