package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trivia-game/internal/event"
	"github.com/redis/go-redis/v9"
)

// Sink appends every published event (JSON) to a per-session Redis list, a
// second durable record beside the file log. Errors surface to the bus, which
// logs and swallows them.
type Sink struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSink(client *redis.Client, ttl time.Duration) *Sink {
	return &Sink{client: client, ttl: ttl}
}

func (s *Sink) HandleEvent(e event.GameEvent) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx := context.Background()
	key := s.key(e.SessionID)
	if err := s.client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("push event: %w", err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("expire events: %w", err)
		}
	}
	return nil
}

func (s *Sink) key(sessionID string) string {
	return "game:events:" + sessionID
}
