package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultTTL matches the backend token lifetime, sessions older
	// than this are stale anyway and get cleared on the next 401.
	DefaultTTL = 24 * 7 * time.Hour

	sessionKeyPrefix = "fitdash-session||"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps the server-side half of a session: token -> user id.
// The browser only ever carries the token and the (non-authoritative)
// user id copies in cookies.
type Store interface {
	Set(ctx context.Context, token, userID string) error
	Get(ctx context.Context, token string) (userID string, err error)
	Del(ctx context.Context, token string) error
}

type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (rs *RedisStore) Set(ctx context.Context, token, userID string) error {
	cmd := rs.redisClient.Set(ctx, sessionKeyPrefix+token, userID, rs.ttl)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (rs *RedisStore) Get(ctx context.Context, token string) (string, error) {
	cmd := rs.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("redis get session: %w", err)
	}
	return cmd.Val(), nil
}

func (rs *RedisStore) Del(ctx context.Context, token string) error {
	cmd := rs.redisClient.Del(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

// MemoryStore backs sessions with an in-process cache, used when no
// redis host is configured (dev setups, tests). Sessions do not
// survive a restart.
type MemoryStore struct {
	sessions *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: cache.New(ttl, 10*time.Minute),
	}
}

func (ms *MemoryStore) Set(_ context.Context, token, userID string) error {
	ms.sessions.Set(token, userID, cache.DefaultExpiration)
	return nil
}

func (ms *MemoryStore) Get(_ context.Context, token string) (string, error) {
	userID, found := ms.sessions.Get(token)
	if !found {
		return "", ErrSessionNotFound
	}
	return userID.(string), nil
}

func (ms *MemoryStore) Del(_ context.Context, token string) error {
	ms.sessions.Delete(token)
	return nil
}
