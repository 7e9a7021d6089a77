// ABOUTME: UI-affine execution contexts for marshalling callbacks onto one owner goroutine
// ABOUTME: Serial drains a channel on a single goroutine; Func adapts external senders

package dispatch

import "sync"

// Dispatcher marshals a function onto the UI-affine execution context.
// All overlay controller state must be mutated through one Dispatcher so
// that settings callbacks never race with show/hide calls.
type Dispatcher interface {
	Dispatch(fn func())
}

// Func adapts a plain function to the Dispatcher interface. Hosts built on
// an external message loop (e.g. a Bubble Tea program) wrap their Send in a
// Func so callbacks are executed inside that loop.
type Func func(fn func())

// Dispatch implements Dispatcher.
func (f Func) Dispatch(fn func()) { f(fn) }

// Direct executes callbacks inline on the caller's goroutine. Only suitable
// for tests and single-threaded hosts that already run on the owner context.
type Direct struct{}

// Dispatch implements Dispatcher.
func (Direct) Dispatch(fn func()) { fn() }

// Serial is a Dispatcher backed by a single owner goroutine draining a
// queue. Dispatched functions run in submission order.
type Serial struct {
	fns      chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewSerial creates a Serial dispatcher with the given queue depth.
// Depths below 1 are raised to 1.
func NewSerial(depth int) *Serial {
	if depth < 1 {
		depth = 1
	}
	return &Serial{
		fns:  make(chan func(), depth),
		done: make(chan struct{}),
	}
}

// Dispatch enqueues fn for the owner goroutine. After Stop, fn is dropped.
func (s *Serial) Dispatch(fn func()) {
	select {
	case <-s.done:
	case s.fns <- fn:
	}
}

// Run drains the queue on the calling goroutine until Stop is called.
// The caller becomes the owner context.
func (s *Serial) Run() {
	for {
		select {
		case <-s.done:
			// Drain what was enqueued before Stop.
			for {
				select {
				case fn := <-s.fns:
					fn()
				default:
					return
				}
			}
		case fn := <-s.fns:
			fn()
		}
	}
}

// Stop terminates Run. Safe to call multiple times and concurrently.
func (s *Serial) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}
