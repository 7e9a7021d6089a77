// ABOUTME: Host-side sensor-location authority for the demo
// ABOUTME: Publishes a movable anchor; unknown until the first window size arrives

package main

import (
	"sync"

	"github.com/halotui/halo/internal/overlay"
)

// movableAnchor is the demo's geometry authority. It starts unknown, like
// a sensor authority that has not yet published a location, and becomes
// known once the host seeds it from the window geometry.
type movableAnchor struct {
	mu     sync.Mutex
	anchor overlay.Anchor
	known  bool
}

func newMovableAnchor() *movableAnchor {
	return &movableAnchor{}
}

// CurrentAnchor implements overlay.GeometryProvider.
func (m *movableAnchor) CurrentAnchor() (overlay.Anchor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.anchor, m.known
}

// Set publishes a new anchor, marking the geometry known.
func (m *movableAnchor) Set(a overlay.Anchor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.anchor = a
	m.known = true
}

// Nudge moves a known anchor by the given raw-unit delta. Unknown anchors
// stay unknown.
func (m *movableAnchor) Nudge(dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.known {
		return
	}
	m.anchor.Center.X += dx
	m.anchor.Center.Y += dy
}
