package service

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/allisson/bankvault/internal/errors"
)

// memoryKeyStore is a map-backed KeyStore for tests.
type memoryKeyStore struct {
	mu     sync.Mutex
	values map[string]string
	sets   int
}

func newMemoryKeyStore() *memoryKeyStore {
	return &memoryKeyStore{values: make(map[string]string)}
}

func (s *memoryKeyStore) Get(_ context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[name]
	if !ok {
		return "", errors.ErrNotFound
	}
	return v, nil
}

func (s *memoryKeyStore) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	s.sets++
	return nil
}

func (s *memoryKeyStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
	return nil
}

func (s *memoryKeyStore) has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[name]
	return ok
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestCipherService wires a CipherServiceImpl over in-memory stores.
func newTestCipherService(t *testing.T) (*CipherServiceImpl, *memoryKeyStore) {
	t.Helper()
	fallback := newMemoryKeyStore()
	keys := NewKeyManager(nil, fallback, rand.Reader, discardLogger())
	return NewCipherService(keys, NewAESCBC(), NewHMACSHA256(), rand.Reader), fallback
}
