//go:build integration

package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/learning-tracker/internal/adapter/redis"
	"github.com/heartmarshall/learning-tracker/internal/config"
	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// setupRedis starts a throwaway redis:7-alpine container and returns a
// connected repository.
func setupRedis(t *testing.T, prefix string) *redis.Repo {
	t.Helper()
	ctx := context.Background()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	addr, err := ctr.PortEndpoint(ctx, "6379/tcp", "")
	if err != nil {
		t.Fatalf("redis endpoint: %v", err)
	}

	repo, err := redis.New(ctx, config.RedisConfig{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
		KeyPrefix:   prefix,
	})
	if err != nil {
		t.Fatalf("redis.New: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestRepo_Integration(t *testing.T) {
	repo := setupRedis(t, "test:")
	ctx := context.Background()

	if _, err := repo.Load(ctx, "slot"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}

	payload := []byte(`{"state":{"items":[],"activities":[]},"version":0}`)
	if err := repo.Save(ctx, "slot", payload); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load(ctx, "slot")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Load = %s, want %s", got, payload)
	}

	if err := repo.Delete(ctx, "slot"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Load(ctx, "slot"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNew_Unreachable(t *testing.T) {
	_, err := redis.New(context.Background(), config.RedisConfig{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected ping error for unreachable server")
	}
}
