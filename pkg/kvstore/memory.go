package kvstore

import (
	"context"
	"encoding/json"
	"sync"

	"gospel-keys/pkg/logger"
)

// MemoryStore backs tests and the STORAGE_BACKEND=memory mode. Values are
// kept JSON-encoded so decode behavior matches the redis store exactly.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string][]byte
	logger *logger.Logger
}

func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string][]byte),
		logger: log,
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest interface{}) bool {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Error("Error decoding %s from storage: %v", key, err)
		return false
	}
	return true
}

func (s *MemoryStore) Set(ctx context.Context, key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Error encoding %s for storage: %v", key, err)
		return false
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
	return true
}

func (s *MemoryStore) Remove(ctx context.Context, key string) bool {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return true
}

func (s *MemoryStore) Clear(ctx context.Context) bool {
	s.mu.Lock()
	s.data = make(map[string][]byte)
	s.mu.Unlock()
	return true
}

func (s *MemoryStore) Has(ctx context.Context, key string) bool {
	s.mu.RLock()
	_, ok := s.data[key]
	s.mu.RUnlock()
	return ok
}
