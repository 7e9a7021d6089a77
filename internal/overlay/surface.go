// ABOUTME: Collaborator boundaries owned by the overlay controller
// ABOUTME: Render surface attachment, animation handles, and style resolution

package overlay

// Animation is the opaque resolved handle for a style's animation loop.
// The controller exclusively starts, stops, and rewinds it.
type Animation interface {
	Start()
	Stop()
	Rewind()
}

// Catalog resolves style indexes to animation handles. Resolution may fail
// (unresolvable style) and must yield nil rather than an error, so the
// controller can treat "no animation" as an enablement-gating condition.
type Catalog interface {
	Count() int
	Resolve(index int) Animation
}

// Surface is the render-surface attachment boundary. Attach and Detach may
// fail transiently (compositor token races); the controller swallows such
// failures and converges on the next event. The other operations are
// best-effort updates of an already-created surface.
type Surface interface {
	Attach(p Placement) error
	Detach() error
	// Move updates the surface placement in place, without a
	// detach/reattach cycle.
	Move(p Placement)
	// Translate applies an additive burn-in translation on top of the
	// fixed placement.
	Translate(dx, dy float64)
	// SetVisual swaps the surface's drawn animation; nil clears the
	// background entirely.
	SetVisual(a Animation)
}
