package screen_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tnhappykids/appcore/core"
	"github.com/tnhappykids/appcore/core/screen"
)

func TestMutatorReloadsAfterWrite(t *testing.T) {
	reloads := 0
	m := screen.NewMutator(screen.WithReload(func(context.Context) { reloads++ }))

	out := m.Do(context.Background(), func(context.Context) error { return nil })

	assert.True(t, out.OK)
	assert.Equal(t, 1, reloads)
}

func TestMutatorServerMessageVerbatim(t *testing.T) {
	m := screen.NewMutator()

	out := m.Do(context.Background(), func(context.Context) error {
		return &core.ServerError{Message: "Fee already assigned for this month"}
	})

	assert.False(t, out.OK)
	assert.Equal(t, "Fee already assigned for this month", out.Message)
}

func TestMutatorServerFailureFallback(t *testing.T) {
	m := screen.NewMutator(screen.WithFallbackMessage("Could not update fee"))

	out := m.Do(context.Background(), func(context.Context) error {
		return &core.ServerError{}
	})

	assert.False(t, out.OK)
	assert.Equal(t, "Could not update fee", out.Message)
}

func TestMutatorInvalidResponse(t *testing.T) {
	// a non-JSON 200 body surfaces as "invalid response", never as a panic
	m := screen.NewMutator()

	out := m.Do(context.Background(), func(context.Context) error {
		return core.ErrInvalidResponse
	})

	assert.False(t, out.OK)
	assert.Equal(t, screen.MsgInvalidResponse, out.Message)
}

func TestMutatorNetworkError(t *testing.T) {
	m := screen.NewMutator()

	out := m.Do(context.Background(), func(context.Context) error {
		return &core.NetworkError{Err: errors.New("dial tcp: connection refused")}
	})

	assert.False(t, out.OK)
	assert.Equal(t, screen.MsgNetworkError, out.Message)
}

func TestMutatorValidationFieldMessage(t *testing.T) {
	m := screen.NewMutator()

	out := m.Do(context.Background(), func(context.Context) error {
		return core.NewValidationError(nil, core.FieldError{Field: "amount", Error: "Enter a valid fee amount"})
	})

	assert.False(t, out.OK)
	assert.Equal(t, "Enter a valid fee amount", out.Message)
}

func TestMutatorNoReloadOnFailure(t *testing.T) {
	// failure leaves local state untouched: no reload, no partial apply
	reloads := 0
	m := screen.NewMutator(screen.WithReload(func(context.Context) { reloads++ }))

	m.Do(context.Background(), func(context.Context) error {
		return &core.ServerError{Message: "nope"}
	})

	assert.Equal(t, 0, reloads)
}

func TestMutatorOptimisticApply(t *testing.T) {
	applied := false
	reloads := 0
	m := screen.NewMutator(screen.WithReload(func(context.Context) { reloads++ }))

	out := m.DoOptimistic(context.Background(),
		func(context.Context) error { return nil },
		func() { applied = true },
	)

	assert.True(t, out.OK)
	assert.True(t, applied)
	assert.Equal(t, 0, reloads) // optimistic path skips the reload
}

func TestMutatorDeleteRequiresConfirmation(t *testing.T) {
	called := false
	m := screen.NewMutator()

	out := m.Delete(context.Background(), false, func(context.Context) error {
		called = true
		return nil
	})

	assert.False(t, out.OK)
	assert.False(t, called) // no network call without confirmation
}

func TestMutatorSwallowsRepeatTaps(t *testing.T) {
	block := make(chan struct{})
	var calls atomic.Int32
	m := screen.NewMutator()

	done := make(chan struct{})
	go func() {
		m.Do(context.Background(), func(context.Context) error {
			calls.Add(1)
			<-block
			return nil
		})
		close(done)
	}()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, testWait, testTick)

	out := m.Do(context.Background(), func(context.Context) error {
		calls.Add(1)
		return nil
	})
	assert.False(t, out.OK) // swallowed, not queued

	close(block)
	<-done
	assert.Equal(t, int32(1), calls.Load())
}
