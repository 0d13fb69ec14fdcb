package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestRetrier_Execute(t *testing.T) {
	errBoom := errors.New("boom")
	errFatal := errors.New("fatal")

	tests := []struct {
		name          string
		config        Config
		failures      int
		failWith      error
		expectedCalls int
		expectErr     bool
		expectedErrIs error
	}{
		{
			name:          "Succeeds first time",
			config:        fastConfig(3),
			expectedCalls: 1,
		},
		{
			name:          "Succeeds after two failures",
			config:        fastConfig(3),
			failures:      2,
			failWith:      errBoom,
			expectedCalls: 3,
		},
		{
			name:          "Gives up after budget",
			config:        fastConfig(2),
			failures:      10,
			failWith:      errBoom,
			expectedCalls: 3,
			expectErr:     true,
			expectedErrIs: errBoom,
		},
		{
			name: "Stops on non-retryable error",
			config: func() Config {
				c := fastConfig(5)
				c.RetryableFunc = func(err error) bool { return !errors.Is(err, errFatal) }
				return c
			}(),
			failures:      10,
			failWith:      errFatal,
			expectedCalls: 1,
			expectErr:     true,
			expectedErrIs: errFatal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.config, logger.NewNopLogger())
			calls := 0

			err := r.Execute(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErrIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r := New(Config{MaxRetries: 5, BaseDelay: time.Second, Multiplier: 2}, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetrier_CalculateDelay(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}, logger.NewNopLogger())

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(2))
}
