package docstore

import (
	"context"
	"encoding/json"
	"time"
)

// MemoryStore provides an in-memory implementation for testing when Redis
// is not available. It round-trips documents through JSON so overwrite and
// marshaling behavior match the Redis store.
type MemoryStore struct {
	data map[string][]byte
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
		now:  time.Now,
	}
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Put(ctx context.Context, collection, docID string, doc any) error {
	if ts, ok := doc.(Timestamped); ok {
		ts.StampWriteTime(s.now().UTC())
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.data[collection+":"+docID] = data
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, docID string, out any) error {
	data, ok := s.data[collection+":"+docID]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, out)
}
