// Package memory keeps tracker state slots in process memory. Nothing
// survives a restart; it backs tests and throwaway sessions.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

type Repo struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func New() *Repo {
	return &Repo{slots: make(map[string][]byte)}
}

func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.slots[key]
	if !ok {
		return nil, fmt.Errorf("slot %q: %w", key, domain.ErrNotFound)
	}
	return slices.Clone(data), nil
}

func (r *Repo) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[key] = slices.Clone(data)
	return nil
}

func (r *Repo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.slots, key)
	return nil
}
