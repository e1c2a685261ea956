// Package repository provides the credential stores and the order event
// log backing the driver gateway.
package repository

import (
	"context"
	"sync"

	"github.com/taxihub/driverapp/services/driver"
)

// MemoryCredentialStore keeps credentials in process memory. Used in
// tests and in ephemeral deployments where persistence across restarts
// is not wanted.
type MemoryCredentialStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCredentialStore creates an empty in-memory store
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{values: make(map[string]string)}
}

// Get retrieves a stored value
func (s *MemoryCredentialStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", driver.ErrCredentialNotFound
	}
	return value, nil
}

// Set stores a value
func (s *MemoryCredentialStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes a value; deleting a missing key is not an error
func (s *MemoryCredentialStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
