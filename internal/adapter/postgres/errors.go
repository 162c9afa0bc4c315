package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// MapError converts pgx/pgconn errors for the slot identified by key into
// domain errors. context.DeadlineExceeded and context.Canceled are NOT
// mapped; they pass through.
func MapError(err error, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("slot %q: %w", key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("slot %q: %w", key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02", "22032": // invalid_text_representation, invalid_json_text
			return fmt.Errorf("slot %q: %w", key, domain.ErrValidation)
		case "23514": // check_violation
			return fmt.Errorf("slot %q: %w", key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("slot %q: %w", key, err)
}
