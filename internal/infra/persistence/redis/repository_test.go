package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"efood/config"
	"efood/internal/domain/repository"
	"efood/internal/infra/persistence/repotest"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points the repositories at EFOOD_TEST_REDIS_ADDR with a key
// prefix unique to the test, so runs never collide.
func newTestClient(t *testing.T) (*goredis.Client, *config.Config) {
	t.Helper()

	addr := os.Getenv("EFOOD_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("EFOOD_TEST_REDIS_ADDR not set")
	}

	client := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(ctx).Err())

	cfg := &config.Config{
		Session: &config.SessionConfig{TTL: time.Minute},
		Redis:   &config.RedisConfig{KeyPrefix: "efood-test-" + uuid.NewString()},
	}

	return client, cfg
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "efood:cart:session:abc", cartSessionKey("efood", "abc"))
	assert.Equal(t, "efood:device:session:abc", deviceKey("efood", "abc"))
}

func TestNewClient_UsesConfig(t *testing.T) {
	client := NewClient(&config.RedisConfig{
		Host:         "cache.internal",
		Port:         6380,
		DB:           2,
		PoolSize:     7,
		MinIdleConns: 1,
		DialTimeout:  time.Second,
	})
	defer client.Close()

	opts := client.Options()
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, readTimeout, opts.ReadTimeout)
}

func TestCartSessionRepository(t *testing.T) {
	repotest.CartSessionRepository(t, func(t *testing.T) repository.CartSessionRepository {
		client, cfg := newTestClient(t)

		return NewCartSessionRepository(client, cfg)
	})
}

func TestCartSessionRepository_SetsTTL(t *testing.T) {
	client, cfg := newTestClient(t)
	repo := NewCartSessionRepository(client, cfg)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "s1", repotest.SampleCartState()))

	ttl, err := client.TTL(ctx, cartSessionKey(cfg.Redis.KeyPrefix, "s1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestDeviceRepository(t *testing.T) {
	repotest.DeviceRepository(t, func(t *testing.T) repository.DeviceRepository {
		client, cfg := newTestClient(t)

		return NewDeviceRepository(client, cfg)
	})
}
