package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/learning-tracker/internal/adapter/file"
	"github.com/heartmarshall/learning-tracker/internal/adapter/memory"
	"github.com/heartmarshall/learning-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/learning-tracker/internal/adapter/postgres/kv"
	"github.com/heartmarshall/learning-tracker/internal/adapter/redis"
	"github.com/heartmarshall/learning-tracker/internal/adapter/sqlite"
	"github.com/heartmarshall/learning-tracker/internal/config"
	"github.com/heartmarshall/learning-tracker/internal/tracker"
)

// App wires configuration, logging, the storage adapter and the store.
type App struct {
	Config *config.Config
	Log    *slog.Logger
	Store  *tracker.Store

	closers []func() error
}

// Open connects the configured storage driver and rehydrates the store.
// Call Close when done.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log}

	storage, err := a.openStorage(ctx)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}

	store, err := tracker.Open(ctx, log, storage,
		tracker.WithKey(cfg.Storage.Key),
		tracker.WithLocation(cfg.Tracker.Location),
		tracker.WithDashboard(cfg.Tracker.ChartDays, cfg.Tracker.RecentActivities),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Store = store

	log.DebugContext(ctx, "application ready",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Storage.Driver),
		slog.String("key", cfg.Storage.Key),
	)

	return a, nil
}

// Close releases storage resources in reverse acquisition order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) openStorage(ctx context.Context) (tracker.Storage, error) {
	cfg := a.Config

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.New(), nil

	case config.DriverFile:
		dir, err := cfg.Storage.DataDir()
		if err != nil {
			return nil, err
		}
		return file.New(dir)

	case config.DriverSQLite:
		path, err := cfg.Storage.SQLiteFile()
		if err != nil {
			return nil, err
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return sqlite.New(db), nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })

		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return nil, err
		}
		if applied > 0 {
			a.Log.InfoContext(ctx, "migrations applied", slog.Int("count", applied))
		}
		return kv.New(pool), nil

	case config.DriverRedis:
		repo, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
