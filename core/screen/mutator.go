package screen

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/tnhappykids/appcore/core"
)

// User-facing fallback texts. Server-provided messages always win.
const (
	MsgNetworkError    = "Network error. Please check your connection and try again."
	MsgInvalidResponse = "Invalid response from server."
	MsgActionFailed    = "Something went wrong. Please try again."
)

// Outcome is what a screen shows after a mutation: either OK, or a terminal
// user-facing message. There is no automatic retry; the user re-triggers.
type Outcome struct {
	OK      bool
	Message string
	Err     error
}

// Mutator standardizes submit-then-reconcile. On success it re-runs the
// attached reload to pull authoritative server state (preferred whenever
// the write can affect sort order, filtering or derived fields) unless the
// caller applies an optimistic patch instead. On failure local state is
// left untouched (no partial apply).
type Mutator struct {
	mu       sync.Mutex
	inflight bool

	fallback string
	reload   func(context.Context)
}

type MutatorOption func(*Mutator)

// WithReload attaches the screen's loader; it is re-run after every
// successful mutation.
func WithReload(reload func(context.Context)) MutatorOption {
	return func(m *Mutator) { m.reload = reload }
}

// WithFallbackMessage overrides the generic failure text used when the
// server reports failure without a message.
func WithFallbackMessage(msg string) MutatorOption {
	return func(m *Mutator) { m.fallback = msg }
}

func NewMutator(opts ...MutatorOption) *Mutator {
	m := &Mutator{fallback: MsgActionFailed}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Do runs the mutation. Rapid repeat triggers while one is in flight are
// swallowed (not queued): the control is effectively disabled until the
// outstanding request resolves.
func (m *Mutator) Do(ctx context.Context, mutate func(context.Context) error) Outcome {
	m.mu.Lock()
	if m.inflight {
		m.mu.Unlock()
		return Outcome{}
	}
	m.inflight = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inflight = false
		m.mu.Unlock()
	}()

	if err := mutate(ctx); err != nil {
		return m.classify(err)
	}
	if m.reload != nil {
		m.reload(ctx)
	}
	return Outcome{OK: true}
}

// DoOptimistic runs the mutation and, on success, applies a local patch
// instead of reloading. Only for writes whose effect on list order and
// derived fields is provably irrelevant (e.g. appending a just-sent chat
// message).
func (m *Mutator) DoOptimistic(ctx context.Context, mutate func(context.Context) error, apply func()) Outcome {
	m.mu.Lock()
	if m.inflight {
		m.mu.Unlock()
		return Outcome{}
	}
	m.inflight = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inflight = false
		m.mu.Unlock()
	}()

	if err := mutate(ctx); err != nil {
		return m.classify(err)
	}
	if apply != nil {
		apply()
	}
	return Outcome{OK: true}
}

// Delete is Do gated on an explicit confirmation step: without it no network
// call is issued at all.
func (m *Mutator) Delete(ctx context.Context, confirmed bool, del func(context.Context) error) Outcome {
	if !confirmed {
		return Outcome{}
	}
	return m.Do(ctx, del)
}

// classify maps the error taxonomy to user-facing text. All errors are
// terminal at the screen boundary; none may escape as a panic.
func (m *Mutator) classify(err error) Outcome {
	var srvErr *core.ServerError
	var valErr *core.ValidationError

	switch {
	case errors.As(err, &valErr):
		msg := valErr.Error()
		if len(valErr.Fields) > 0 {
			msg = valErr.Fields[0].Error
		}
		return Outcome{Message: msg, Err: err}
	case errors.As(err, &srvErr):
		if srvErr.Message != "" {
			return Outcome{Message: srvErr.Message, Err: err}
		}
		return Outcome{Message: m.fallback, Err: err}
	case errors.Is(err, core.ErrInvalidResponse):
		return Outcome{Message: MsgInvalidResponse, Err: err}
	case core.IsNetworkError(err):
		return Outcome{Message: MsgNetworkError, Err: err}
	default:
		return Outcome{Message: m.fallback, Err: err}
	}
}
