// Package file stores tracker state slots as JSON files in a directory,
// one file per key.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

const ext = ".json"

// Repo provides slot persistence on the local filesystem.
type Repo struct {
	dir string
}

// New creates the directory if needed and returns a repository rooted at it.
func New(dir string) (*Repo, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Repo{dir: dir}, nil
}

// Dir returns the directory slots are stored in.
func (r *Repo) Dir() string { return r.dir }

// Load returns the contents of the slot file.
// Returns domain.ErrNotFound if the file does not exist.
func (r *Repo) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := r.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("slot %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", key, err)
	}
	return data, nil
}

// Save replaces the slot file atomically: the payload is written to a temp
// file in the same directory, synced, then renamed over the old file.
func (r *Repo) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := r.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("slot %q: create temp: %w", key, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("slot %q: write: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("slot %q: sync: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("slot %q: close: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("slot %q: rename: %w", key, err)
	}
	return nil
}

// Delete removes the slot file. Deleting a missing slot is not an error.
func (r *Repo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("slot %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file inside dir. Keys must be plain file names.
func (r *Repo) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", domain.NewValidationError("key", "must be a plain file name")
	}
	return filepath.Join(r.dir, key+ext), nil
}
