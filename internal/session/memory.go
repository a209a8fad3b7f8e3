package session

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store used by tests and tooling.
type MemoryStore struct {
	mu      sync.Mutex
	byToken map[string]int64
	byUser  map[int64]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken: make(map[string]int64),
		byUser:  make(map[int64]string),
	}
}

func (s *MemoryStore) Create(_ context.Context, token string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.byUser[userID]; ok {
		delete(s.byToken, old)
	}
	s.byToken[token] = userID
	s.byUser[userID] = token
	return nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byToken[token]
	if !ok {
		return 0, ErrNotFound
	}
	return id, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byToken[token]
	if !ok {
		return nil
	}
	delete(s.byToken, token)
	delete(s.byUser, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
