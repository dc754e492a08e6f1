package reply

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"ovi/geoservices/internal/domain"
)

type State int

const (
	Pending State = iota
	Finished
	Errored
)

func (s State) String() string {
	switch s {
	case Finished:
		return "finished"
	case Errored:
		return "errored"
	default:
		return "pending"
	}
}

// Reply is the handle returned by every engine operation. It starts
// Pending and makes exactly one transition to Finished or Errored,
// after which its result and error are stable. Done is closed on that
// transition, for error outcomes too, so waiting on Done is always the
// single completion signal.
type Reply[T any] struct {
	id     string
	cancel context.CancelFunc

	mu         sync.Mutex
	state      State
	result     T
	err        *domain.Error
	onFinished []func()
	onError    []func(*domain.Error)

	done chan struct{}
}

// New creates a pending reply and the context its background work
// should run under. Aborting the reply cancels the context.
func New[T any](parent context.Context) (*Reply[T], context.Context) {
	ctx, cancel := context.WithCancel(parent)
	return &Reply[T]{
		id:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan struct{}),
	}, ctx
}

func (r *Reply[T]) ID() string { return r.id }

func (r *Reply[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Done is closed exactly once, when the reply reaches a terminal
// state.
func (r *Reply[T]) Done() <-chan struct{} { return r.done }

// Result is valid once Done is closed. For errored replies it is the
// zero value.
func (r *Reply[T]) Result() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// Err is nil for pending and finished replies.
func (r *Reply[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		return nil
	}
	return r.err
}

// SetFinished completes the reply successfully. The first terminal
// transition wins; later calls are no-ops. Returns whether this call
// made the transition.
func (r *Reply[T]) SetFinished(result T) bool {
	r.mu.Lock()
	if r.state != Pending {
		r.mu.Unlock()
		return false
	}
	r.state = Finished
	r.result = result
	finished := r.takeFinishedCallbacks()
	r.mu.Unlock()

	r.cancel()
	close(r.done)
	for _, fn := range finished {
		fn()
	}
	return true
}

// SetError completes the reply with a typed error. The error callbacks
// run before the finished callbacks, matching the two notifications an
// error outcome produces.
func (r *Reply[T]) SetError(kind domain.ErrorKind, message string) bool {
	r.mu.Lock()
	if r.state != Pending {
		r.mu.Unlock()
		return false
	}
	r.state = Errored
	r.err = domain.NewError(kind, message)
	err := r.err
	onError := r.onError
	r.onError = nil
	finished := r.takeFinishedCallbacks()
	r.mu.Unlock()

	r.cancel()
	close(r.done)
	for _, fn := range onError {
		fn(err)
	}
	for _, fn := range finished {
		fn()
	}
	return true
}

// Abort cancels a pending reply, transitioning it to Errored with a
// cancel kind. Aborting a terminal reply is a no-op; Abort is safe to
// call repeatedly.
func (r *Reply[T]) Abort() {
	r.cancel()
	r.SetError(domain.CancelError, "request aborted")
}

// OnFinished registers a completion callback. It fires exactly once,
// after the terminal transition, for both outcomes. Registering on an
// already terminal reply fires immediately.
func (r *Reply[T]) OnFinished(fn func()) {
	r.mu.Lock()
	if r.state != Pending {
		r.mu.Unlock()
		fn()
		return
	}
	r.onFinished = append(r.onFinished, fn)
	r.mu.Unlock()
}

// OnError registers an error callback. It fires at most once, only for
// the Errored outcome, before the finished callbacks.
func (r *Reply[T]) OnError(fn func(*domain.Error)) {
	r.mu.Lock()
	if r.state == Errored {
		err := r.err
		r.mu.Unlock()
		fn(err)
		return
	}
	if r.state == Finished {
		r.mu.Unlock()
		return
	}
	r.onError = append(r.onError, fn)
	r.mu.Unlock()
}

// Wait blocks until the reply is terminal or the context is done.
func (r *Reply[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.Result(), r.Err()
	case <-ctx.Done():
		var zero T
		return zero, domain.Errorf(domain.CancelError, "wait canceled: %v", ctx.Err())
	}
}

func (r *Reply[T]) takeFinishedCallbacks() []func() {
	finished := r.onFinished
	r.onFinished = nil
	return finished
}
