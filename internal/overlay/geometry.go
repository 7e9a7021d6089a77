// ABOUTME: Sensor anchor geometry types and the geometry authority boundary
// ABOUTME: Anchors are in raw display units; placement math applies the scale

package overlay

// Point is a position in raw display units.
type Point struct {
	X, Y float64
}

// Anchor is the sensor's reported center point and radius in raw display
// units.
type Anchor struct {
	Center Point
	Radius float64
}

// GeometryProvider reports the current sensor anchor on demand. The second
// return is false until the sensor-location authority has published a value;
// that is a valid transient state, not an error.
type GeometryProvider interface {
	CurrentAnchor() (Anchor, bool)
}
