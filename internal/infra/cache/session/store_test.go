package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

func testSession() *domain.Session {
	return &domain.Session{
		User:  domain.User{ID: "u1", Email: "admin@drivetail.io", Role: "admin"},
		Token: "tok",
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Set(ctx, "k", testSession(), time.Hour))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "admin@drivetail.io", got.User.Email)

	now = now.Add(time.Hour)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.Set(ctx, "forever", testSession(), 0))
	now = now.Add(1000 * time.Hour)
	_, err = store.Get(ctx, "forever")
	assert.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "forever"))
	require.NoError(t, store.Delete(ctx, "missing"))
	_, err = store.Get(ctx, "forever")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_SetSweepsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, store.Set(ctx, key, testSession(), time.Minute))
	}
	require.NoError(t, store.Set(ctx, "forever", testSession(), 0))
	assert.Equal(t, 4, store.Len())

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Set(ctx, "fresh", testSession(), time.Hour))

	// истекшие удалены без единого Get
	assert.Equal(t, 2, store.Len())
	_, err := store.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client)
	require.NoError(t, store.Ping(ctx))

	key := "test-" + time.Now().Format("150405.000000")
	require.NoError(t, store.Set(ctx, key, testSession(), time.Minute))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.User.ID)

	ttl, err := client.TTL(ctx, keyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
