package repository

import (
	"context"
	"fmt"

	"github.com/taxihub/driverapp/internal/pkg/database"
	"github.com/taxihub/driverapp/services/driver"
)

// RedisCredentialStore persists credentials in Redis, namespaced per
// device so fleet installations can share one instance.
type RedisCredentialStore struct {
	client   *database.RedisClient
	deviceID string
}

// NewRedisCredentialStore creates a store scoped to deviceID
func NewRedisCredentialStore(client *database.RedisClient, deviceID string) *RedisCredentialStore {
	return &RedisCredentialStore{
		client:   client,
		deviceID: deviceID,
	}
}

func (s *RedisCredentialStore) redisKey(key string) string {
	return fmt.Sprintf("driverapp:credentials:%s:%s", s.deviceID, key)
}

// Get retrieves a stored value
func (s *RedisCredentialStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.redisKey(key))
	if database.IsNotFound(err) {
		return "", driver.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	return value, nil
}

// Set stores a value without expiration; credentials live until logout
func (s *RedisCredentialStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, 0); err != nil {
		return fmt.Errorf("failed to set credential: %w", err)
	}
	return nil
}

// Delete removes a value; deleting a missing key is not an error
func (s *RedisCredentialStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Delete(ctx, s.redisKey(key)); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
