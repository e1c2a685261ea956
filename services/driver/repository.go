package driver

import (
	"context"
	"errors"

	"github.com/taxihub/driverapp/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/taxihub/driverapp/services/driver CredentialStore,OrderLog

// Credential store keys
const (
	CredentialPhone    = "phone"
	CredentialPassword = "password"
	CredentialAPIURL   = "api_url"
)

// ErrCredentialNotFound is returned by Get when no value is stored
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialStore persists login credentials and the last-used backend
// URL between runs. Implementations must keep values confidential at rest.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// OrderLog records order lifecycle transitions for fleet audit.
// Implementations must tolerate high write rates; callers treat failures
// as non-fatal.
type OrderLog interface {
	RecordEvent(ctx context.Context, order models.Order, event string) error
}
