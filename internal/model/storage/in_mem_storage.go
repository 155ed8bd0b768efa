package storage

import (
	"context"
	"sort"
	"sync"
)

type InMemStorage struct {
	mu    sync.RWMutex
	blobs map[int64][]byte
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{blobs: make(map[int64][]byte)}
}

func (s *InMemStorage) Read(_ context.Context, userID int64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (s *InMemStorage) Write(_ context.Context, userID int64, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[userID] = append([]byte(nil), blob...)
	return nil
}

func (s *InMemStorage) List(_ context.Context) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.blobs))
	for id := range s.blobs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
