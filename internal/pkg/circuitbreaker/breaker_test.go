package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxihub/driverapp/internal/pkg/apierr"
	"github.com/taxihub/driverapp/internal/pkg/logger"
)

func testBreaker(timeout time.Duration) *Breaker {
	cfg := DefaultConfig("test")
	cfg.Timeout = timeout
	return New(cfg, logger.NewNop())
}

func networkErr() error {
	return apierr.Network("connection refused", nil)
}

func TestBreakerStaysClosedOnSuccess(t *testing.T) {
	cb := testBreaker(time.Minute)

	for i := 0; i < 10; i++ {
		err := cb.Execute(context.Background(), func(ctx context.Context) error { return nil })
		require.NoError(t, err)
	}

	assert.Equal(t, StateClosed, cb.State())
}

func TestBreakerTripsAfterConsecutiveNetworkFailures(t *testing.T) {
	cb := testBreaker(time.Minute)

	for i := 0; i < 5; i++ {
		cb.Execute(context.Background(), func(ctx context.Context) error { return networkErr() })
	}
	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run while open")
		return nil
	})
	assert.ErrorIs(t, err, ErrOpen)
}

func TestBreakerIgnoresNonNetworkFailures(t *testing.T) {
	cb := testBreaker(time.Minute)

	for i := 0; i < 10; i++ {
		cb.Execute(context.Background(), func(ctx context.Context) error {
			return apierr.Protocol(500, "server error")
		})
	}

	assert.Equal(t, StateClosed, cb.State())
}

func TestBreakerSuccessResetsFailureStreak(t *testing.T) {
	cb := testBreaker(time.Minute)

	for i := 0; i < 4; i++ {
		cb.Execute(context.Background(), func(ctx context.Context) error { return networkErr() })
	}
	cb.Execute(context.Background(), func(ctx context.Context) error { return nil })
	cb.Execute(context.Background(), func(ctx context.Context) error { return networkErr() })

	assert.Equal(t, StateClosed, cb.State())
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := testBreaker(20 * time.Millisecond)

	for i := 0; i < 5; i++ {
		cb.Execute(context.Background(), func(ctx context.Context) error { return networkErr() })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(30 * time.Millisecond)

	err := cb.Execute(context.Background(), func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreakerReopensOnHalfOpenFailure(t *testing.T) {
	cb := testBreaker(20 * time.Millisecond)

	for i := 0; i < 5; i++ {
		cb.Execute(context.Background(), func(ctx context.Context) error { return networkErr() })
	}
	time.Sleep(30 * time.Millisecond)

	cb.Execute(context.Background(), func(ctx context.Context) error { return networkErr() })
	assert.Equal(t, StateOpen, cb.State())
}

func TestBreakerPropagatesError(t *testing.T) {
	cb := testBreaker(time.Minute)

	sentinel := errors.New("boom")
	err := cb.Execute(context.Background(), func(ctx context.Context) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}
