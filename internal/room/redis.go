package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	openRoomsKey     = "rooms:open"    // LIST of open room names
	roomMemberPrefix = "room:members:" // per-room LIST of member user ids
	playerRoomPrefix = "room:player:"  // user_id -> room name index
)

// addMemberScript appends a member only while the room is below
// capacity, returning the member list afterwards. An empty reply means
// the room was already full.
// KEYS[1]: room member list, ARGV[1]: user id, ARGV[2]: capacity
var addMemberScript = redis.NewScript(`
if redis.call('LLEN', KEYS[1]) >= tonumber(ARGV[2]) then
    return {}
end
redis.call('RPUSH', KEYS[1], ARGV[1])
return redis.call('LRANGE', KEYS[1], 0, -1)
`)

// RedisStore is the Redis-backed matchmaking store.
type RedisStore struct {
	cli *redis.Client
}

// NewRedisStore creates a Redis-backed room store.
func NewRedisStore(cli *redis.Client) *RedisStore {
	return &RedisStore{cli: cli}
}

// PopOpen atomically removes the most recently opened room.
func (s *RedisStore) PopOpen(ctx context.Context) (string, error) {
	name, err := s.cli.RPop(ctx, openRoomsKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoOpenRoom
	}
	if err != nil {
		return "", fmt.Errorf("pop open room: %w", err)
	}
	return name, nil
}

// PushOpen appends a room to the open list.
func (s *RedisStore) PushOpen(ctx context.Context, name string) error {
	if err := s.cli.RPush(ctx, openRoomsKey, name).Err(); err != nil {
		return fmt.Errorf("push open room: %w", err)
	}
	return nil
}

// OpenRooms returns the current open list, oldest first.
func (s *RedisStore) OpenRooms(ctx context.Context) ([]string, error) {
	names, err := s.cli.LRange(ctx, openRoomsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list open rooms: %w", err)
	}
	return names, nil
}

// CreateRoom resets the room record with creator as its sole member.
// A user re-creating their own room after an earlier game starts clean.
func (s *RedisStore) CreateRoom(ctx context.Context, name, creator string) error {
	key := roomMemberPrefix + name
	_, err := s.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, creator)
		return nil
	})
	if err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// AddMember appends userID under the capacity check.
func (s *RedisStore) AddMember(ctx context.Context, name, userID string, capacity int) ([]string, error) {
	res, err := addMemberScript.Run(ctx, s.cli,
		[]string{roomMemberPrefix + name},
		userID, capacity,
	).StringSlice()
	if err != nil {
		return nil, fmt.Errorf("add room member: %w", err)
	}
	if len(res) == 0 {
		return nil, ErrRoomFull
	}
	return res, nil
}

// Members returns the room's member list in join order.
func (s *RedisStore) Members(ctx context.Context, name string) ([]string, error) {
	members, err := s.cli.LRange(ctx, roomMemberPrefix+name, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list room members: %w", err)
	}
	return members, nil
}

// RoomOf returns the room userID currently occupies.
func (s *RedisStore) RoomOf(ctx context.Context, userID string) (string, error) {
	name, err := s.cli.Get(ctx, playerRoomPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotInRoom
	}
	if err != nil {
		return "", fmt.Errorf("lookup player room: %w", err)
	}
	return name, nil
}

// SetRoomOf records which room userID occupies.
func (s *RedisStore) SetRoomOf(ctx context.Context, userID, name string) error {
	if err := s.cli.Set(ctx, playerRoomPrefix+userID, name, 0).Err(); err != nil {
		return fmt.Errorf("set player room: %w", err)
	}
	return nil
}
