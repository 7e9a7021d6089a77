// ABOUTME: Burn-in protection offset computation for always-on display modes
// ABOUTME: Maps doze progress to a per-axis translation within [-max, +max]

package overlay

// Axis selects the burn-in sweep axis. The horizontal and vertical axes are
// compensated independently, each with its own configured magnitude.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// OffsetFunc is the raw burn-in waveform: given a sweep amplitude it
// returns the current raw offset in [0, amplitude]. The waveform's shape is
// host-defined; the compensator only relies on that range.
type OffsetFunc func(amplitude float64, axis Axis) float64

// FullSweep is the default waveform: the raw offset sits at the amplitude's
// far end, so the compensated offset spans the whole [-max, +max] range as
// progress goes 0 to 1.
func FullSweep(amplitude float64, _ Axis) float64 {
	return amplitude
}

// Compensator computes burn-in protection offsets. Stateless per call;
// identical inputs yield identical offsets.
type Compensator struct {
	raw OffsetFunc
}

// NewCompensator creates a compensator using the given waveform, or
// FullSweep when raw is nil.
func NewCompensator(raw OffsetFunc) *Compensator {
	if raw == nil {
		raw = FullSweep
	}
	return &Compensator{raw: raw}
}

// Offset returns the translation for one axis. At progress 0 the result is
// exactly -maxMagnitude; it increases toward the waveform's current point
// within [-maxMagnitude, +maxMagnitude] as progress approaches 1. Progress
// outside [0,1] is clamped, as is a waveform that leaves its range.
func (c *Compensator) Offset(axis Axis, maxMagnitude, progress float64) float64 {
	if maxMagnitude <= 0 {
		return 0
	}
	amplitude := maxMagnitude * 2
	raw := clamp(c.raw(amplitude, axis), 0, amplitude)
	return lerp(0, raw, clamp(progress, 0, 1)) - maxMagnitude
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
