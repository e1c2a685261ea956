package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxihub/driverapp/internal/pkg/apierr"
	"github.com/taxihub/driverapp/internal/pkg/logger"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 10 * time.Millisecond
	return cfg
}

func TestCalculateDelayDoubles(t *testing.T) {
	r := New(DefaultConfig(), logger.NewNop())

	assert.Equal(t, 1*time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 4*time.Second, r.calculateDelay(2))
}

func TestCalculateDelayCapped(t *testing.T) {
	r := New(DefaultConfig(), logger.NewNop())

	// 2^6 seconds would be 64s, above the 30s cap
	assert.Equal(t, 30*time.Second, r.calculateDelay(6))
}

func TestExecuteSucceedsFirstAttempt(t *testing.T) {
	r := New(testConfig(), logger.NewNop())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteRetriesNetworkErrors(t *testing.T) {
	r := New(testConfig(), logger.NewNop())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return apierr.Network("connection refused", nil)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteExhaustsRetryBudget(t *testing.T) {
	r := New(testConfig(), logger.NewNop())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apierr.Network("connection refused", nil)
	})

	require.Error(t, err)
	assert.Equal(t, 4, calls) // initial attempt + 3 retries
	assert.Contains(t, err.Error(), "retry limit exceeded after 4 attempts")
	assert.Equal(t, apierr.KindNetwork, apierr.KindOf(err))
}

func TestExecuteDoesNotRetryAuthenticationErrors(t *testing.T) {
	r := New(testConfig(), logger.NewNop())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apierr.Authentication("invalid credentials")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, apierr.KindAuthentication, apierr.KindOf(err))
}

func TestExecuteDoesNotRetryProtocolErrors(t *testing.T) {
	r := New(testConfig(), logger.NewNop())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apierr.Protocol(500, "internal server error")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteZeroRetries(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRetries = 0
	r := New(cfg, logger.NewNop())

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return apierr.Network("connection refused", nil)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteStopsOnContextCancel(t *testing.T) {
	cfg := testConfig()
	cfg.BaseDelay = time.Second
	r := New(cfg, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Execute(ctx, func(ctx context.Context) error {
			calls++
			return apierr.Network("connection refused", nil)
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(time.Second):
		t.Fatal("Execute did not return after cancellation")
	}
}
