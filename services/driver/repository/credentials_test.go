package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxihub/driverapp/services/driver"
)

func TestMemoryCredentialStore(t *testing.T) {
	store := NewMemoryCredentialStore()
	ctx := context.Background()

	_, err := store.Get(ctx, driver.CredentialPhone)
	assert.ErrorIs(t, err, driver.ErrCredentialNotFound)

	require.NoError(t, store.Set(ctx, driver.CredentialPhone, "500123456"))
	value, err := store.Get(ctx, driver.CredentialPhone)
	require.NoError(t, err)
	assert.Equal(t, "500123456", value)

	require.NoError(t, store.Delete(ctx, driver.CredentialPhone))
	_, err = store.Get(ctx, driver.CredentialPhone)
	assert.ErrorIs(t, err, driver.ErrCredentialNotFound)

	// Deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestFileCredentialStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.enc")
	ctx := context.Background()

	store, err := NewFileCredentialStore(path, "passphrase")
	require.NoError(t, err)

	_, err = store.Get(ctx, driver.CredentialPhone)
	assert.ErrorIs(t, err, driver.ErrCredentialNotFound)

	require.NoError(t, store.Set(ctx, driver.CredentialPhone, "500123456"))
	require.NoError(t, store.Set(ctx, driver.CredentialPassword, "secret"))

	// A fresh store over the same file sees the persisted values
	reopened, err := NewFileCredentialStore(path, "passphrase")
	require.NoError(t, err)

	value, err := reopened.Get(ctx, driver.CredentialPhone)
	require.NoError(t, err)
	assert.Equal(t, "500123456", value)

	require.NoError(t, reopened.Delete(ctx, driver.CredentialPhone))
	_, err = reopened.Get(ctx, driver.CredentialPhone)
	assert.ErrorIs(t, err, driver.ErrCredentialNotFound)

	value, err = reopened.Get(ctx, driver.CredentialPassword)
	require.NoError(t, err)
	assert.Equal(t, "secret", value)
}

func TestFileCredentialStoreCiphertextAtRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.enc")
	ctx := context.Background()

	store, err := NewFileCredentialStore(path, "passphrase")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, driver.CredentialPassword, "super-secret"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret")
	assert.NotContains(t, string(raw), driver.CredentialPassword)
}

func TestFileCredentialStoreWrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.enc")
	ctx := context.Background()

	store, err := NewFileCredentialStore(path, "passphrase")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, driver.CredentialPhone, "500123456"))

	wrong, err := NewFileCredentialStore(path, "other-passphrase")
	require.NoError(t, err)

	_, err = wrong.Get(ctx, driver.CredentialPhone)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrypt")
}

func TestFileCredentialStoreRequiresPassphrase(t *testing.T) {
	_, err := NewFileCredentialStore(filepath.Join(t.TempDir(), "c.enc"), "")
	require.Error(t, err)
}

func TestFileCredentialStoreDeleteMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.enc")
	store, err := NewFileCredentialStore(path, "passphrase")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "missing"))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr)) // no file written for a no-op delete
}
