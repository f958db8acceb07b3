package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTokenBlacklist_NoClientIsNoop(t *testing.T) {
	var nilList *TokenBlacklist
	ok, err := nilList.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, ok)

	b := NewTokenBlacklistWithClient(nil, zap.NewNop())
	require.NoError(t, b.Revoke(context.Background(), "jti", time.Minute))

	ok, err = b.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, b.Close())
}

func TestTokenBlacklist_Redis(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	defer client.Close()

	b := NewTokenBlacklistWithClient(client, zap.NewNop())
	jti := "test-" + time.Now().Format(time.RFC3339Nano)

	ok, err := b.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Revoke(ctx, jti, time.Minute))

	ok, err = b.IsRevoked(ctx, jti)
	require.NoError(t, err)
	assert.True(t, ok)

	ttl, err := client.TTL(ctx, revokedKeyPrefix+jti).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, b.Revoke(ctx, "expired-"+jti, 0))
	ok, err = b.IsRevoked(ctx, "expired-"+jti)
	require.NoError(t, err)
	assert.False(t, ok)
}
