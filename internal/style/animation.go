// ABOUTME: Animation handle bound to a resolved style: a looped frame sequence
// ABOUTME: Start/Stop/Rewind drive playback; the host advances frames on its tick

package style

import "time"

// Animation is the resolved handle for one style. It is owned exclusively
// by the overlay controller; the host only reads the current frame when
// rendering. Not safe for concurrent use — all calls happen on the
// UI-affine context.
type Animation struct {
	name     string
	frames   []string
	interval time.Duration
	frame    int
	running  bool
}

func newAnimation(def definition) *Animation {
	return &Animation{
		name:     def.Name,
		frames:   def.Frames,
		interval: def.interval(),
	}
}

// Name returns the style name this handle was resolved from.
func (a *Animation) Name() string { return a.name }

// Interval returns the frame advance period.
func (a *Animation) Interval() time.Duration { return a.interval }

// Start begins playback. Starting a running animation is a no-op.
func (a *Animation) Start() { a.running = true }

// Stop halts playback at the current frame.
func (a *Animation) Stop() { a.running = false }

// Rewind resets playback to the first frame.
func (a *Animation) Rewind() { a.frame = 0 }

// Running reports whether playback is active.
func (a *Animation) Running() bool { return a.running }

// Advance steps to the next frame, wrapping at the end. No-op while stopped.
func (a *Animation) Advance() {
	if !a.running || len(a.frames) == 0 {
		return
	}
	a.frame = (a.frame + 1) % len(a.frames)
}

// Frame returns the current frame's glyph art. Empty when the style has no
// frames.
func (a *Animation) Frame() string {
	if len(a.frames) == 0 {
		return ""
	}
	return a.frames[a.frame]
}
