package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/narender/vending-machine/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shutdownFunc func(context.Context) error

func (f shutdownFunc) Shutdown(ctx context.Context) error { return f(ctx) }

func testConfig() *config.Config {
	return config.NewConfig(config.WithShutdownTimeouts(time.Second, 200*time.Millisecond, 200*time.Millisecond))
}

func TestShutdown_Order(t *testing.T) {
	var order []string
	server := shutdownFunc(func(context.Context) error {
		order = append(order, "server")
		return nil
	})
	tel := func(context.Context) error {
		order = append(order, "telemetry")
		return nil
	}

	require.NoError(t, Shutdown(testConfig(), server, tel))
	assert.Equal(t, []string{"server", "telemetry"}, order)
}

func TestShutdown_CollectsErrors(t *testing.T) {
	serverErr := errors.New("listener busy")
	server := shutdownFunc(func(context.Context) error { return serverErr })
	telemetryCalled := false
	tel := func(context.Context) error {
		telemetryCalled = true
		return nil
	}

	err := Shutdown(testConfig(), server, tel)

	require.Error(t, err)
	assert.ErrorIs(t, err, serverErr)
	assert.True(t, telemetryCalled)
}

func TestShutdown_TaskTimeout(t *testing.T) {
	server := shutdownFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := Shutdown(testConfig(), server, nil)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForGracefulShutdown_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	server := shutdownFunc(func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, WaitForGracefulShutdown(ctx, testConfig(), server, nil))
	assert.True(t, called)
}

func TestFiberShutdownAdapter_NilApp(t *testing.T) {
	adapter := &FiberShutdownAdapter{}
	assert.NoError(t, adapter.Shutdown(context.Background()))
}
