package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircuitBreaker(t *testing.T) {
	breaker := NewCircuitBreaker("green-cip", 30*time.Second, 3, nil)

	wrapper, ok := breaker.(*circuitBreakerWrapper)
	require.True(t, ok)
	assert.Equal(t, "green-cip", wrapper.breaker.Name())
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}

func TestCircuitBreakerWrapper_Execute_Success(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3, nil)

	err := breaker.Execute(func() error {
		return nil
	})

	assert.NoError(t, err)
}

func TestCircuitBreakerWrapper_Execute_ErrorWrapping(t *testing.T) {
	breaker := NewCircuitBreaker("error-wrap-test", 30*time.Second, 3, nil)
	testError := errors.New("original error")

	err := breaker.Execute(func() error {
		return testError
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, testError)
	assert.Contains(t, err.Error(), "breaker (error-wrap-test)")
}

func TestCircuitBreakerWrapper_Execute_PanicRecovered(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{name: "String panic", panicValue: "test panic"},
		{name: "Error panic", panicValue: errors.New("panic error")},
		{name: "Integer panic", panicValue: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewCircuitBreaker("panic-test", 30*time.Second, 3, nil)

			err := breaker.Execute(func() error {
				panic(tt.panicValue)
			})

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "panic-test")
			assert.Contains(t, err.Error(), "panic recovered:")
		})
	}
}

func TestCircuitBreakerWrapper_Execute_CircuitOpen(t *testing.T) {
	breaker := NewCircuitBreaker("circuit-open-test", time.Minute, 2, nil)
	calls := 0
	failing := func() error {
		calls++
		return errors.New("failure")
	}

	assert.Error(t, breaker.Execute(failing))
	assert.Error(t, breaker.Execute(failing))

	err := breaker.Execute(failing)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 2, calls, "open breaker must not invoke the function")
}

func TestCircuitBreakerWrapper_Execute_Recovery(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1, nil)
	wrapper, _ := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	assert.Error(t, breaker.Execute(func() error { return errors.New("trip") }))
	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, wrapper.breaker.State())

	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}

func TestCircuitBreakerWrapper_LogsStateChange(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	breaker := NewCircuitBreaker("logged", time.Minute, 1, logger)

	_ = breaker.Execute(func() error { return errors.New("trip") }) //nolint:errcheck

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "logged", hook.LastEntry().Data["breaker"])
	assert.Equal(t, "open", hook.LastEntry().Data["to"])
}
