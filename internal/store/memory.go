package store

import (
	"context"
	"sync"
)

// MemoryStore keeps everything in process memory. Used in development and tests.
type MemoryStore struct {
	mutex  sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: map[string][]byte{},
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.values[key] = append([]byte{}, value...)
	return nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}
