// ABOUTME: Polling-based settings file watcher for live reload
// ABOUTME: Monitors the store's mtime at configurable intervals; no inotify dependency

package settings

import (
	"os"
	"sync"
	"time"
)

// Watcher polls the store's file mtime and invokes onChange when it moves.
// onChange runs on a goroutine of its own; callers that need the UI-affine
// context must marshal themselves (the Subscription does).
type Watcher struct {
	store    *Store
	onChange func()
	interval time.Duration
	mtime    time.Time
	seen     bool
	stopCh   chan struct{}
	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher over the store's file.
func NewWatcher(store *Store, onChange func()) *Watcher {
	return &Watcher{
		store:    store,
		onChange: onChange,
		interval: time.Second,
		stopCh:   make(chan struct{}),
	}
}

// SetInterval overrides the default polling interval (1s).
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Start begins polling in a goroutine. Subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.snapshotLocked()
	w.mu.Unlock()

	go w.loop()
}

// Stop halts polling. Safe to call multiple times and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// ForceCheck triggers an immediate check outside the polling cycle. Used by
// the host right after it saves, so its own edits apply without waiting a
// full interval. onChange runs on its own goroutine: the host calls
// ForceCheck from inside its message loop, and delivery must never block
// that loop on its own channel.
func (w *Watcher) ForceCheck() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.checkLocked() {
		w.snapshotLocked()
		go w.onChange()
	}
}

func (w *Watcher) loop() {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.ForceCheck()
		}
	}
}

// checkLocked compares the current mtime with the snapshot. Must hold mu.
func (w *Watcher) checkLocked() bool {
	info, err := os.Stat(w.store.Path())
	if err != nil {
		// File removed: a change if it existed before.
		return w.seen
	}
	return !w.seen || !info.ModTime().Equal(w.mtime)
}

// snapshotLocked records the current mtime. Must hold mu.
func (w *Watcher) snapshotLocked() {
	info, err := os.Stat(w.store.Path())
	if err != nil {
		w.seen = false
		return
	}
	w.seen = true
	w.mtime = info.ModTime()
}
