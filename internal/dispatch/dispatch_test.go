// ABOUTME: Tests for the UI-affine dispatchers
// ABOUTME: Validates ordering, owner-goroutine affinity, and stop semantics

package dispatch

import (
	"sync"
	"testing"
	"time"
)

func TestDirect_RunsInline(t *testing.T) {
	t.Parallel()

	ran := false
	Direct{}.Dispatch(func() { ran = true })
	if !ran {
		t.Error("Direct did not run the function inline")
	}
}

func TestFunc_Adapts(t *testing.T) {
	t.Parallel()

	var got func()
	d := Func(func(fn func()) { got = fn })

	marker := false
	d.Dispatch(func() { marker = true })
	if got == nil {
		t.Fatal("Func did not receive the function")
	}
	got()
	if !marker {
		t.Error("forwarded function did not run")
	}
}

func TestSerial_OrderAndAffinity(t *testing.T) {
	t.Parallel()

	s := NewSerial(16)

	var mu sync.Mutex
	var order []int

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	for i := range 5 {
		s.Dispatch(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	// The final dispatched function signals that everything before it ran.
	drained := make(chan struct{})
	s.Dispatch(func() { close(drained) })
	select {
	case <-drained:
	case <-time.After(time.Second):
		t.Fatal("owner goroutine did not drain the queue")
	}
	s.Stop()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 5 {
		t.Fatalf("ran %d functions, want 5", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Errorf("order[%d] = %d, want %d (submission order violated)", i, v, i)
		}
	}
}

func TestSerial_StopDropsLateDispatch(t *testing.T) {
	t.Parallel()

	s := NewSerial(1)
	s.Stop()
	s.Stop() // idempotent

	// Must not block or panic after Stop.
	doneCh := make(chan struct{})
	go func() {
		s.Dispatch(func() {})
		close(doneCh)
	}()

	select {
	case <-doneCh:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked after Stop")
	}
}
