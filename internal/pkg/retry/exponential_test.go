package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musafir-app/musafir/internal/pkg/logger"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2.0,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

func TestExecuteSucceedsAfterRetries(t *testing.T) {
	r := New(fastConfig(), logger.NewNopLogger())

	attempts := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestExecuteExhaustsRetries(t *testing.T) {
	r := New(fastConfig(), logger.NewNopLogger())

	attempts := 0
	sentinel := errors.New("always failing")
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 4, attempts, "initial attempt plus three retries")
}

func TestExecuteStopsOnNonRetryable(t *testing.T) {
	cfg := fastConfig()
	cfg.RetryableFunc = func(err error) bool { return false }
	r := New(cfg, logger.NewNopLogger())

	attempts := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return errors.New("fatal")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	r := New(fastConfig(), logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("never reached")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNetworkRetryableFunc(t *testing.T) {
	retryable := NetworkRetryableFunc()

	assert.True(t, retryable(errors.New("dial tcp: connection refused")))
	assert.True(t, retryable(errors.New("unexpected status 503: Service Unavailable")))
	assert.False(t, retryable(errors.New("invalid request")))
	assert.False(t, retryable(nil))
}
