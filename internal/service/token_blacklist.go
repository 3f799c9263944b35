package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
)

const tokenBlacklistPrefix = "token_blacklist:"

// TokenBlacklist records revoked access tokens until they expire.
// 로그아웃된 토큰은 만료 시각까지 차단된다.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

type redisTokenBlacklist struct {
	client *redis.Client
}

// NewRedisTokenBlacklist creates a redis-backed token blacklist
func NewRedisTokenBlacklist(client *redis.Client) TokenBlacklist {
	return &redisTokenBlacklist{client: client}
}

// blacklistKey hashes the token so raw credentials never reach redis
func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenBlacklistPrefix + hex.EncodeToString(sum[:])
}

func (b *redisTokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

func (b *redisTokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
