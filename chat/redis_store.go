package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "journeo:session:"

// RedisStore keeps each session's transcript in a Redis list, trimmed to the
// same window as MemoryStore.
type RedisStore struct {
	client *redis.Client
	limit  int
}

// NewRedisStore creates a store on client keeping at most limit entries per session.
func NewRedisStore(client *redis.Client, limit int) *RedisStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &RedisStore{client: client, limit: limit}
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// Add appends e and trims the list to the window in one transaction.
func (s *RedisStore) Add(ctx context.Context, sessionID string, e Entry) error {
	data, err := json.Marshal(compact(e))
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}

	key := sessionKey(sessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.LTrim(ctx, key, int64(-s.limit), -1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append to %s: %w", key, err)
	}
	return nil
}

// List returns the session's transcript, oldest first.
func (s *RedisStore) List(ctx context.Context, sessionID string) ([]Entry, error) {
	key := sessionKey(sessionID)
	items, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("decode entry in %s: %w", key, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Clear deletes the session's list.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session %s: %w", sessionID, err)
	}
	return nil
}
