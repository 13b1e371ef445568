package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bondhu-robotics/bondhu/internal/intent"
)

// ContextEntry is one exchange kept in the short-term conversation window.
type ContextEntry struct {
	Utterance string          `json:"utterance"`
	Response  string          `json:"response"`
	Language  intent.Language `json:"language"`
	Timestamp time.Time       `json:"timestamp"`
}

// ContextStore keeps the recent-turn window per speaker in Redis lists. It
// feeds generative context; Postgres remains the durable record.
type ContextStore struct {
	client *redis.Client
}

func NewContextStore(client *redis.Client) *ContextStore {
	return &ContextStore{client: client}
}

func contextKey(personID *uuid.UUID) string {
	if personID == nil {
		return "conv:anonymous"
	}
	return fmt.Sprintf("conv:%s", personID.String())
}

// Recent returns the last `limit` exchanges for the given speaker.
func (s *ContextStore) Recent(ctx context.Context, personID *uuid.UUID, limit int) ([]ContextEntry, error) {
	key := contextKey(personID)

	vals, err := s.client.LRange(ctx, key, int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}

	entries := make([]ContextEntry, 0, len(vals))
	for _, v := range vals {
		var entry ContextEntry
		if err := json.Unmarshal([]byte(v), &entry); err != nil {
			continue // skip malformed entries
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Append adds one exchange to the speaker's window, trims it to maxTurns and
// refreshes its TTL.
func (s *ContextStore) Append(ctx context.Context, personID *uuid.UUID, entry ContextEntry, maxTurns int, ttl time.Duration) error {
	key := contextKey(personID)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling entry: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, string(data))
	pipe.LTrim(ctx, key, int64(-maxTurns), -1)
	pipe.Expire(ctx, key, ttl)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("pipeline exec for %s: %w", key, err)
	}
	return nil
}

// Clear drops the speaker's window, e.g. on session reset.
func (s *ContextStore) Clear(ctx context.Context, personID *uuid.UUID) error {
	return s.client.Del(ctx, contextKey(personID)).Err()
}
