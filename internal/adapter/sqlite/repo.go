package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

const table = "kv_slots"

// Repo provides slot persistence backed by SQLite.
type Repo struct {
	db  *sql.DB
	sb  sq.StatementBuilderType
	now func() time.Time
}

// New creates a slot repository over a database prepared by Open.
func New(db *sql.DB) *Repo {
	return &Repo{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now: time.Now,
	}
}

// Load returns the payload stored under key.
// Returns domain.ErrNotFound if no row exists.
func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	query, args, err := r.sb.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var value string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return nil, mapError(err, key)
	}

	return []byte(value), nil
}

// Save upserts the payload stored under key.
func (r *Repo) Save(ctx context.Context, key string, data []byte) error {
	query, args, err := r.sb.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, string(data), r.now().UnixMilli()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, key)
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

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, key)
	}

	return nil
}

// mapError converts database/sql errors into domain errors.
func mapError(err error, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("slot %q: %w", key, domain.ErrNotFound)
	}
	return fmt.Errorf("slot %q: %w", key, err)
}
