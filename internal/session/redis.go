package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	connKeyPrefix = "session:conn:" // conn_id -> user_id
	userKeyPrefix = "session:user:" // user_id -> conn_id (reverse index)
)

// RedisStore is the Redis-backed connection registry.
type RedisStore struct {
	cli *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(cli *redis.Client) *RedisStore {
	return &RedisStore{cli: cli}
}

// Register writes both directions of the mapping in one transaction.
func (s *RedisStore) Register(ctx context.Context, connID, userID string) error {
	_, err := s.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, connKeyPrefix+connID, userID, 0)
		pipe.Set(ctx, userKeyPrefix+userID, connID, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("register session: %w", err)
	}
	return nil
}

// unregisterScript removes a session and its reverse index atomically.
// The reverse index is dropped only if it still points at this
// connection; a reconnect may already have claimed it.
// KEYS[1]: conn key, ARGV[1]: conn id, ARGV[2]: user key prefix
var unregisterScript = redis.NewScript(`
local user = redis.call('GET', KEYS[1])
if user == false then
    return 0
end
redis.call('DEL', KEYS[1])
local userKey = ARGV[2] .. user
if redis.call('GET', userKey) == ARGV[1] then
    redis.call('DEL', userKey)
end
return 1
`)

// Unregister removes the mapping for connID and its reverse index.
func (s *RedisStore) Unregister(ctx context.Context, connID string) error {
	err := unregisterScript.Run(ctx, s.cli,
		[]string{connKeyPrefix + connID},
		connID, userKeyPrefix,
	).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("unregister session: %w", err)
	}
	return nil
}

// UserByConn resolves a connection id to its owner.
func (s *RedisStore) UserByConn(ctx context.Context, connID string) (string, error) {
	userID, err := s.cli.Get(ctx, connKeyPrefix+connID).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup user by conn: %w", err)
	}
	return userID, nil
}

// ConnByUser resolves a user id to their registered connection.
func (s *RedisStore) ConnByUser(ctx context.Context, userID string) (string, error) {
	connID, err := s.cli.Get(ctx, userKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup conn by user: %w", err)
	}
	return connID, nil
}
