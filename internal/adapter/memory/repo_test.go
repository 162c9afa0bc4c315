package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

func TestRepo_LoadMissing(t *testing.T) {
	t.Parallel()
	_, err := New().Load(context.Background(), "k")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_SaveCopiesInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	buf := []byte("abc")
	if err := repo.Save(ctx, "k", buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	buf[0] = 'X'

	got, err := repo.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("stored slot aliased caller buffer: %q", got)
	}

	got[0] = 'Y'
	again, _ := repo.Load(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("Load returned aliased buffer: %q", again)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	_ = repo.Save(ctx, "k", []byte("v"))
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if _, err := repo.Load(ctx, "k"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := New()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, "k", []byte{byte(i)})
			_, _ = repo.Load(ctx, "k")
		}()
	}
	wg.Wait()

	if _, err := repo.Load(ctx, "k"); err != nil {
		t.Fatalf("Load: %v", err)
	}
}
