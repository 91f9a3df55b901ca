package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petcare-landing/internal/ports/kv"
)

// kvStore es el equivalente in-memory del localStorage de un cliente.
type kvStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewKV() kv.Store {
	return &kvStore{
		slots: make(map[string]string),
	}
}

func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	if !ok {
		return "", kv.ErrNotFound
	}
	return v, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(key) == "" {
		return errors.New("slot key required")
	}
	s.slots[key] = value
	return nil
}

// Remove es idempotente: borrar un slot inexistente no es error.
func (s *kvStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
