// ABOUTME: Settings subscription delivering normalized Config snapshots
// ABOUTME: Marshals change callbacks onto the UI-affine dispatcher, eager first fire

package settings

import (
	"github.com/halotui/halo/internal/dispatch"
	"github.com/halotui/halo/internal/log"
)

// Config is the combined snapshot of the two live keys delivered to
// subscribers. StyleIndex is already normalized against the style count.
type Config struct {
	Enabled    bool
	StyleIndex int
}

// StyleCounter reports how many styles exist, for index normalization.
// A nil counter is treated as count zero.
type StyleCounter interface {
	Count() int
}

// NormalizeIndex maps out-of-range style indexes to 0. With a zero count
// every index normalizes to 0.
func NormalizeIndex(index, count int) int {
	if index < 0 || index >= count {
		return 0
	}
	return index
}

// Subscription watches the settings store and delivers Config snapshots.
// Delivery is always asynchronous via the dispatcher, never from the
// watcher's polling goroutine, so callbacks may safely touch controller
// state. The first snapshot fires at subscribe time with the currently
// stored values.
type Subscription struct {
	store    *Store
	styles   StyleCounter
	disp     dispatch.Dispatcher
	onChange func(Config)
	watcher  *Watcher
}

// Subscribe starts watching the store and returns the subscription.
func Subscribe(store *Store, styles StyleCounter, disp dispatch.Dispatcher, onChange func(Config)) *Subscription {
	s := &Subscription{
		store:    store,
		styles:   styles,
		disp:     disp,
		onChange: onChange,
	}
	s.watcher = NewWatcher(store, s.deliver)
	s.watcher.Start()
	// Eager initial delivery so the consumer starts from the stored state
	// instead of a zero-value default.
	s.deliver()
	return s
}

// ForceCheck asks the underlying watcher to re-stat the file immediately.
func (s *Subscription) ForceCheck() {
	s.watcher.ForceCheck()
}

// Close stops the underlying watcher. Pending dispatched deliveries may
// still arrive; they are idempotent last-writer-wins snapshots.
func (s *Subscription) Close() {
	s.watcher.Stop()
}

func (s *Subscription) deliver() {
	st, err := s.store.Load()
	if err != nil {
		log.Warn("settings reload: %v", err)
		// st already carries safe defaults.
	}

	count := 0
	if s.styles != nil {
		count = s.styles.Count()
	}
	cfg := Config{
		Enabled:    st.Enabled,
		StyleIndex: NormalizeIndex(st.Style, count),
	}
	s.disp.Dispatch(func() { s.onChange(cfg) })
}
