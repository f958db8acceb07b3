package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"film-catalog/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "auth:revoked:"

// TokenBlacklist stores revoked access-token ids in Redis until they expire.
// A blacklist without a client is a no-op: nothing is revoked.
type TokenBlacklist struct {
	client redis.UniversalClient
	log    *zap.Logger
}

// NewTokenBlacklist connects to Redis. An empty address yields a no-op blacklist.
func NewTokenBlacklist(config utils.RedisConfig, log *zap.Logger) (*TokenBlacklist, error) {
	log = log.With(zap.String("cache", "token_blacklist"))
	if config.Addr == "" {
		log.Warn("REDIS_ADDR not set, access token revocation disabled")
		return &TokenBlacklist{log: log}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewTokenBlacklistWithClient(rdb, log), nil
}

// NewTokenBlacklistWithClient wraps an existing client.
func NewTokenBlacklistWithClient(client redis.UniversalClient, log *zap.Logger) *TokenBlacklist {
	return &TokenBlacklist{client: client, log: log}
}

// Revoke marks jti as revoked for ttl. Non-positive ttl means the token has
// already expired and nothing is stored.
func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if b == nil || b.client == nil || ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", jti, err)
	}
	return nil
}

// IsRevoked reports whether jti has been revoked.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if b == nil || b.client == nil {
		return false, nil
	}
	err := b.client.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check revoked token %s: %w", jti, err)
	}
	return true, nil
}

// Close releases the Redis connection.
func (b *TokenBlacklist) Close() error {
	if b == nil || b.client == nil {
		return nil
	}
	return b.client.Close()
}
