// Package http implements the resilient transport used for every call to
// the dispatch backend: default JSON headers, Basic auth from the session,
// per-attempt timeouts, exponential-backoff retries for network failures,
// and a circuit breaker guarding against a dead backend.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/taxihub/driverapp/internal/pkg/apierr"
	"github.com/taxihub/driverapp/internal/pkg/circuitbreaker"
	"github.com/taxihub/driverapp/internal/pkg/logger"
	"github.com/taxihub/driverapp/internal/pkg/models"
	nrpkg "github.com/taxihub/driverapp/internal/pkg/newrelic"
	"github.com/taxihub/driverapp/internal/pkg/retry"
)

// AuthProvider is the transport's read-only view of the session. Endpoint
// methods never mutate session state through it.
type AuthProvider interface {
	// BaseURL returns the normalized backend base URL
	BaseURL() string
	// AuthHeader returns the Authorization header value and whether one exists
	AuthHeader() (string, bool)
}

// Config holds transport configuration
type Config struct {
	Timeout time.Duration // per-attempt timeout
	Retry   retry.Config
}

// DefaultConfig returns the default transport configuration
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
		Retry:   retry.DefaultConfig(),
	}
}

// Transport executes logical requests against the backend
type Transport struct {
	httpClient  *http.Client
	auth        AuthProvider
	retryConfig retry.Config
	breaker     *circuitbreaker.Breaker
	logger      *logger.ZapLogger
}

// NewTransport creates a transport bound to an auth provider
func NewTransport(auth AuthProvider, config Config, log *logger.ZapLogger) *Transport {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &Transport{
		httpClient:  &http.Client{Timeout: config.Timeout},
		auth:        auth,
		retryConfig: config.Retry,
		breaker:     circuitbreaker.New(circuitbreaker.DefaultConfig("dispatch-api"), log),
		logger:      log,
	}
}

// BreakerStats exposes breaker state for the status endpoint
func (t *Transport) BreakerStats() circuitbreaker.Stats {
	return t.breaker.Stats()
}

// Request executes one logical request with the configured retry budget
func (t *Transport) Request(ctx context.Context, method, endpoint string, body interface{}, headers map[string]string) (*models.Envelope, error) {
	return t.RequestWithRetries(ctx, method, endpoint, body, headers, t.retryConfig.MaxRetries)
}

// RequestWithRetries executes one logical request, retrying network-level
// failures up to maxRetries additional times. HTTP-level failures (401,
// other ≥400, unparseable body) are never retried.
func (t *Transport) RequestWithRetries(ctx context.Context, method, endpoint string, body interface{}, headers map[string]string, maxRetries int) (*models.Envelope, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, apierr.Validation(fmt.Sprintf("failed to encode request body: %v", err))
		}
	}

	requestID := uuid.NewString()

	retryConfig := t.retryConfig
	retryConfig.MaxRetries = maxRetries
	retrier := retry.New(retryConfig, t.logger)

	var envelope *models.Envelope
	attempt := 0

	err := t.breaker.Execute(ctx, func(ctx context.Context) error {
		return retrier.Execute(ctx, func(ctx context.Context) error {
			attempt++
			env, err := t.do(ctx, method, endpoint, payload, headers, requestID, attempt)
			if err != nil {
				return err
			}
			envelope = env
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpen) {
			return nil, apierr.Network("backend temporarily unavailable", err)
		}
		return nil, err
	}

	return envelope, nil
}

// do performs one HTTP attempt and classifies its outcome
func (t *Transport) do(ctx context.Context, method, endpoint string, payload []byte, headers map[string]string, requestID string, attempt int) (*models.Envelope, error) {
	url := t.auth.BaseURL() + endpoint

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, apierr.Validation(fmt.Sprintf("failed to build request: %v", err))
	}

	// Defaults first, then extra headers merge over them
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if auth, ok := t.auth.AuthHeader(); ok {
		req.Header.Set("Authorization", auth)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	t.logger.Debug("API request",
		logger.String("method", method),
		logger.String("endpoint", endpoint),
		logger.String("request_id", requestID),
		logger.Int("attempt", attempt))

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return t.httpClient.Do(req)
	})
	if err != nil {
		return nil, apierr.Network(fmt.Sprintf("request to %s failed: %v", endpoint, err), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Network(fmt.Sprintf("failed to read response from %s: %v", endpoint, err), err)
	}

	t.logger.Debug("API response",
		logger.String("endpoint", endpoint),
		logger.String("request_id", requestID),
		logger.Int("status", resp.StatusCode))

	// Status classification wins over body parsing: a 401 with a
	// non-JSON body is still an authentication failure.
	if resp.StatusCode >= 400 {
		var envelope models.Envelope
		message := ""
		if err := json.Unmarshal(respBody, &envelope); err == nil {
			message = envelope.ErrorMessage()
		}
		if message == "" {
			message = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, apierr.Authentication(message)
		}
		return nil, apierr.Protocol(resp.StatusCode, message)
	}

	var envelope models.Envelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, apierr.Protocol(resp.StatusCode, "invalid JSON response")
	}

	return &envelope, nil
}
