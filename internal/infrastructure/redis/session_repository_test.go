package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	catalogredis "github.com/jhoicas/Catalogo-api/internal/infrastructure/redis"
)

// setupTestRedis usa REDIS_TEST_ADDR (o localhost:6379, DB 1) y omite el test si no hay Redis.
func setupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr, DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis no disponible en %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newSession(ttl time.Duration) *entity.Session {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &entity.Session{
		ID:        uuid.NewString(),
		Principal: entity.Principal{AdminID: 3, TenantID: 7, Username: "admin1"},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	client := setupTestRedis(t)
	repo := catalogredis.NewSessionRepository(client, "test-"+uuid.NewString())
	ctx := context.Background()

	s := newSession(time.Minute)
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.Principal, got.Principal)
	assert.WithinDuration(t, s.ExpiresAt, got.ExpiresAt, time.Millisecond)

	require.NoError(t, repo.Delete(ctx, s.ID))
	got, err = repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// idempotente
	require.NoError(t, repo.Delete(ctx, s.ID))
}

func TestSessionRepository_SesionInexistente(t *testing.T) {
	client := setupTestRedis(t)
	repo := catalogredis.NewSessionRepository(client, "test-"+uuid.NewString())

	got, err := repo.Get(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepository_ExpiraPorTTL(t *testing.T) {
	client := setupTestRedis(t)
	repo := catalogredis.NewSessionRepository(client, "test-"+uuid.NewString())
	ctx := context.Background()

	s := newSession(1500 * time.Millisecond)
	require.NoError(t, repo.Save(ctx, s))

	require.Eventually(t, func() bool {
		got, err := repo.Get(ctx, s.ID)
		return err == nil && got == nil
	}, 5*time.Second, 100*time.Millisecond)
}
