// Package redis stores tracker state slots as plain Redis string values.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/learning-tracker/internal/config"
	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// Repo provides slot persistence backed by a Redis server.
type Repo struct {
	rdb    *goredis.Client
	prefix string
}

// New connects to Redis and pings it so misconfiguration fails fast.
func New(ctx context.Context, cfg config.RedisConfig) (*Repo, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Repo{rdb: rdb, prefix: cfg.KeyPrefix}, nil
}

// Load returns the value stored under key.
// Returns domain.ErrNotFound if the key does not exist.
func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		return nil, mapError(err, key)
	}
	return data, nil
}

// Save stores the value under key without expiry.
func (r *Repo) Save(ctx context.Context, key string, data []byte) error {
	if err := r.rdb.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return mapError(err, key)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		return mapError(err, key)
	}
	return nil
}

func (r *Repo) Close() error {
	return r.rdb.Close()
}

func mapError(err error, key string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, goredis.Nil) {
		return fmt.Errorf("slot %q: %w", key, domain.ErrNotFound)
	}
	return fmt.Errorf("slot %q: %w", key, err)
}
