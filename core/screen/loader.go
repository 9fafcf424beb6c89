// Package screen implements the two conventions every data screen follows:
// load server state into local view state (Loader), and submit a change then
// reflect server truth (Mutator). Implemented once here, tested once here.
package screen

import (
	"context"
	"sync"
)

// State is the view-facing snapshot of a Loader.
type State[T any] struct {
	Data    T
	Err     error
	Loading bool
	// Loaded is true once any load has succeeded; it distinguishes an empty
	// list from a never-loaded one.
	Loaded bool
}

type Loader[T any] struct {
	mu           sync.Mutex
	fetch        func(context.Context) (T, error)
	precondition func() error
	resetOnError bool
	onChange     func(State[T])

	state    State[T]
	inflight bool
	closed   bool
}

type LoaderOption[T any] func(*Loader[T])

// WithPrecondition short-circuits Load with the returned error before any
// network call. Used for required navigation params (e.g. a missing
// studentId indicates a programming error, not a transient condition).
func WithPrecondition[T any](check func() error) LoaderOption[T] {
	return func(l *Loader[T]) { l.precondition = check }
}

// ResetOnError clears previously loaded data when a load fails. The default
// keeps it: a transient failure must not blank a populated list.
func ResetOnError[T any]() LoaderOption[T] {
	return func(l *Loader[T]) { l.resetOnError = true }
}

// OnChange registers the state observer (the rendering side). Invoked
// outside the loader lock.
func OnChange[T any](fn func(State[T])) LoaderOption[T] {
	return func(l *Loader[T]) { l.onChange = fn }
}

func NewLoader[T any](fetch func(context.Context) (T, error), opts ...LoaderOption[T]) *Loader[T] {
	l := &Loader[T]{fetch: fetch}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load runs the fetch and publishes the resulting state. Triggered on mount,
// on dependency change, on focus-regain and on explicit refresh, always the
// full fetch, there is no incremental sync. At most one load is in flight:
// re-triggering while busy is a no-op (this is the per-screen "loading flag"
// guard made systemic). On failure previous data is retained unless
// ResetOnError was set.
func (l *Loader[T]) Load(ctx context.Context) {
	l.mu.Lock()
	if l.closed || l.inflight {
		l.mu.Unlock()
		return
	}
	if l.precondition != nil {
		if err := l.precondition(); err != nil {
			l.state.Err = err
			l.state.Loading = false
			l.publishLocked()
			return
		}
	}
	l.inflight = true
	l.state.Loading = true
	l.state.Err = nil
	l.publishLocked()

	data, err := l.fetch(ctx)

	l.mu.Lock()
	l.inflight = false
	l.state.Loading = false
	if err != nil {
		l.state.Err = err
		if l.resetOnError {
			var zero T
			l.state.Data = zero
			l.state.Loaded = false
		}
	} else {
		l.state.Data = data
		l.state.Err = nil
		l.state.Loaded = true
	}
	l.publishLocked()
}

// publishLocked snapshots state, releases the lock and notifies the
// observer. Closed loaders publish nothing: navigating away while a request
// is pending must be a no-op, never a crash.
func (l *Loader[T]) publishLocked() {
	snapshot := l.state
	closed := l.closed
	fn := l.onChange
	l.mu.Unlock()
	if fn != nil && !closed {
		fn(snapshot)
	}
}

func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Close detaches the loader from its screen. Any in-flight fetch still
// completes but its result is not published.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
