package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chole-mining/pipeline/internal/config"
)

// RedisStore persists documents as whole JSON values under
// "<prefix><collection>:<docID>" keys. A SET replaces the entire value,
// which gives the required overwrite semantics without coordination.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		prefix: cfg.RedisPrefix,
		now:    time.Now,
	}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(collection, docID string) string {
	return s.prefix + collection + ":" + docID
}

// Put writes doc under the collection/docID key, stamping the write time
// first when the document carries one. Documents are kept without TTL;
// dated documents form the historical log.
func (s *RedisStore) Put(ctx context.Context, collection, docID string, doc any) error {
	if ts, ok := doc.(Timestamped); ok {
		ts.StampWriteTime(s.now().UTC())
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s/%s: %w", collection, docID, err)
	}

	if err := s.client.Set(ctx, s.key(collection, docID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s/%s: %w", collection, docID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, collection, docID string, out any) error {
	data, err := s.client.Get(ctx, s.key(collection, docID)).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %s/%s: %w", collection, docID, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal document %s/%s: %w", collection, docID, err)
	}
	return nil
}
