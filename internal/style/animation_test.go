// ABOUTME: Tests for animation handle playback
// ABOUTME: Covers start/stop/rewind semantics and frame wrap-around

package style

import (
	"testing"
	"time"
)

func testDefinition() definition {
	return definition{Name: "test", IntervalMS: 50, Frames: []string{"a", "b", "c"}}
}

func TestAnimation_AdvanceOnlyWhileRunning(t *testing.T) {
	t.Parallel()

	a := newAnimation(testDefinition())
	a.Advance()
	if a.Frame() != "a" {
		t.Errorf("stopped animation advanced to %q", a.Frame())
	}

	a.Start()
	a.Advance()
	if a.Frame() != "b" {
		t.Errorf("Frame() = %q, want \"b\"", a.Frame())
	}
}

func TestAnimation_WrapAndRewind(t *testing.T) {
	t.Parallel()

	a := newAnimation(testDefinition())
	a.Start()
	for range 3 {
		a.Advance()
	}
	if a.Frame() != "a" {
		t.Errorf("expected wrap to first frame, got %q", a.Frame())
	}

	a.Advance()
	a.Stop()
	a.Rewind()
	if a.Running() {
		t.Error("Rewind must not restart playback")
	}
	if a.Frame() != "a" {
		t.Errorf("Frame() after Rewind = %q, want \"a\"", a.Frame())
	}
}

func TestAnimation_DefaultInterval(t *testing.T) {
	t.Parallel()

	def := testDefinition()
	def.IntervalMS = 0
	a := newAnimation(def)
	if a.Interval() != defaultFrameIntervalMS*time.Millisecond {
		t.Errorf("Interval() = %v, want %v", a.Interval(), defaultFrameIntervalMS*time.Millisecond)
	}
}
