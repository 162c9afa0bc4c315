package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/heartmarshall/learning-tracker/internal/adapter/file"
	"github.com/heartmarshall/learning-tracker/internal/domain"
)

func newRepo(t *testing.T) *file.Repo {
	t.Helper()
	repo, err := file.New(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return repo
}

func TestRepo_Load_Missing(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.Load(context.Background(), "learning-tracker-storage")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_SaveLoad(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Load = %q, want %q", got, "two")
	}

	// Only the slot file remains; temp files are cleaned up.
	entries, err := os.ReadDir(repo.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "k.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir entries = %v, want [k.json]", names)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	for range 2 {
		if err := repo.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}
	if _, err := repo.Load(ctx, "k"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRepo_RejectsUnsafeKeys(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	for _, key := range []string{"", ".", "..", "../escape", "a/b", `a\b`, ".hidden"} {
		t.Run(key, func(t *testing.T) {
			if err := repo.Save(ctx, key, []byte("x")); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Save(%q) err = %v, want ErrValidation", key, err)
			}
			if _, err := repo.Load(ctx, key); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Load(%q) err = %v, want ErrValidation", key, err)
			}
		})
	}
}

func TestRepo_CanceledContext(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := repo.Save(ctx, "k", []byte("v")); !errors.Is(err, context.Canceled) {
		t.Errorf("Save err = %v, want context.Canceled", err)
	}
	if _, err := repo.Load(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Errorf("Load err = %v, want context.Canceled", err)
	}
}
