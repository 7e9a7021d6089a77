// ABOUTME: Screen-space placement math for the sensor overlay
// ABOUTME: Derives the overlay rectangle from anchor geometry and display scale

package overlay

// DefaultSize is the overlay's square edge length in screen-space units.
const DefaultSize = 64.0

// Placement is the computed screen-space rectangle at which the overlay is
// drawn. It is derived state: recomputed from geometry, never persisted.
type Placement struct {
	X, Y          float64
	Width, Height float64
}

// ComputePlacement positions a size×size overlay centered horizontally on
// the scaled anchor and lifted above it by the scaled sensor radius.
func ComputePlacement(a Anchor, scale, size float64) Placement {
	return Placement{
		X:      a.Center.X*scale - size/2,
		Y:      a.Center.Y*scale - a.Radius*scale - size/2,
		Width:  size,
		Height: size,
	}
}

// Display describes the hosting display for scale resolution.
type Display struct {
	// Density is the UI scale factor reported by the platform; zero or
	// negative means unknown.
	Density float64
}

// ResolveScale returns the display's UI scale factor, defaulting to 1.0
// when the platform cannot report one.
func ResolveScale(d Display) float64 {
	if d.Density <= 0 {
		return 1.0
	}
	return d.Density
}
