// Package kv implements the tracker state slot on PostgreSQL. Each slot is
// one row of kv_slots holding the JSON payload.
package kv

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/learning-tracker/internal/adapter/postgres"
)

const table = "kv_slots"

// Repo provides slot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new slot repository. The kv_slots table must exist
// (see postgres.Migrate).
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Load returns the payload stored under key.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := r.sb.
		Select("value::text").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var value string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return nil, postgres.MapError(err, key)
	}

	return []byte(value), nil
}

// Save upserts the payload stored under key. The payload must be JSON.
func (r *Repo) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := r.sb.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, string(data), sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, key)
	}

	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (r *Repo) Delete(ctx context.Context, key string) error {
	query, args, err := r.sb.
		Delete(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, key)
	}

	return nil
}
