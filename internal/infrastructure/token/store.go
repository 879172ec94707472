package token

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "blacklist:session:"

// BlacklistStore records revoked session token IDs.
type BlacklistStore interface {
	Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// RedisBlacklistStore keeps revoked token IDs in Redis, each keyed by JTI
// and expiring together with the token itself.
type RedisBlacklistStore struct {
	client *redis.Client
}

var _ BlacklistStore = (*RedisBlacklistStore)(nil)

func NewRedisBlacklistStore(client *redis.Client) *RedisBlacklistStore {
	return &RedisBlacklistStore{client: client}
}

// Blacklist marks a token ID as revoked until its natural expiry.
func (s *RedisBlacklistStore) Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}
	return s.client.Set(ctx, blacklistKeyPrefix+tokenID, "1", ttl).Err()
}

// IsBlacklisted reports whether a token ID has been revoked. A Redis error
// is treated as not blacklisted so an outage does not lock everyone out.
func (s *RedisBlacklistStore) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKeyPrefix+tokenID).Result()
	if err != nil {
		return false, nil
	}
	return n > 0, nil
}
