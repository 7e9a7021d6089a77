// ABOUTME: Tests for the burn-in compensator
// ABOUTME: Validates the -max boundary at progress 0 and the [-max, +max] range

package overlay

import (
	"math"
	"testing"
)

func TestCompensator_ZeroProgressIsNegativeMax(t *testing.T) {
	t.Parallel()

	c := NewCompensator(nil)
	for _, m := range []float64{0, 0.5, 1, 7, 9, 40} {
		got := c.Offset(AxisX, m, 0)
		if got != -m {
			t.Errorf("Offset(m=%v, progress=0) = %v, want %v", m, got, -m)
		}
	}
}

func TestCompensator_RangeBound(t *testing.T) {
	t.Parallel()

	waveforms := map[string]OffsetFunc{
		"full":     FullSweep,
		"half":     func(amp float64, _ Axis) float64 { return amp / 2 },
		"zero":     func(float64, Axis) float64 { return 0 },
		"overshot": func(amp float64, _ Axis) float64 { return amp * 3 }, // clamped
		"negative": func(amp float64, _ Axis) float64 { return -amp },    // clamped
	}

	for name, raw := range waveforms {
		c := NewCompensator(raw)
		for _, m := range []float64{0.5, 7, 9} {
			for p := 0.0; p <= 1.0; p += 0.05 {
				got := c.Offset(AxisY, m, p)
				if got < -m-1e-9 || got > m+1e-9 {
					t.Errorf("%s: Offset(m=%v, p=%v) = %v outside [-%v, %v]", name, m, p, got, m, m)
				}
			}
		}
	}
}

func TestCompensator_ProgressClamped(t *testing.T) {
	t.Parallel()

	c := NewCompensator(nil)
	if got := c.Offset(AxisX, 5, -1); got != -5 {
		t.Errorf("Offset(progress=-1) = %v, want -5", got)
	}
	if got := c.Offset(AxisX, 5, 2); got != 5 {
		t.Errorf("Offset(progress=2) = %v, want 5", got)
	}
}

func TestCompensator_PerAxisWaveform(t *testing.T) {
	t.Parallel()

	// The waveform receives the axis, so axes can sweep independently.
	raw := func(amp float64, axis Axis) float64 {
		if axis == AxisX {
			return amp
		}
		return 0
	}
	c := NewCompensator(raw)
	if x := c.Offset(AxisX, 4, 1); x != 4 {
		t.Errorf("AxisX offset = %v, want 4", x)
	}
	if y := c.Offset(AxisY, 4, 1); y != -4 {
		t.Errorf("AxisY offset = %v, want -4", y)
	}
}

func TestCompensator_Idempotent(t *testing.T) {
	t.Parallel()

	c := NewCompensator(nil)
	a := c.Offset(AxisX, 7, 0.3)
	b := c.Offset(AxisX, 7, 0.3)
	if math.Abs(a-b) > 0 {
		t.Errorf("identical inputs produced %v and %v", a, b)
	}
}
