// ABOUTME: Overlay positioning and animation-state controller
// ABOUTME: Owns the show/hide state machine, placement, and the resolved style handle

package overlay

import "github.com/halotui/halo/internal/log"

// State is the overlay attachment state. The render surface is attached to
// the compositor if and only if the state is Shown.
type State int

const (
	StateHidden State = iota
	StateShown
)

// String returns the human-readable state label.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShown:
		return "shown"
	default:
		return "unknown"
	}
}

// Config is the materialized settings snapshot the controller consumes.
// The style index arrives already normalized against the catalog bounds.
type Config struct {
	Enabled    bool
	StyleIndex int
}

// Params carries the controller's constructor-injected collaborators.
type Params struct {
	Surface  Surface
	Geometry GeometryProvider
	Catalog  Catalog

	// Compensator defaults to NewCompensator(nil) when nil.
	Compensator *Compensator
	// Scale is the display scale factor; non-positive falls back to 1.0.
	Scale float64
	// Size is the overlay edge length; non-positive falls back to
	// DefaultSize.
	Size float64
	// BurnInMaxX and BurnInMaxY are the per-axis burn-in magnitudes.
	BurnInMaxX float64
	BurnInMaxY float64
}

// Controller orchestrates the overlay. All methods must be called on one
// UI-affine execution context; asynchronous inputs (settings changes,
// burn-in ticks) are marshalled there by the host before reaching the
// controller.
type Controller struct {
	surface  Surface
	geometry GeometryProvider
	catalog  Catalog
	comp     *Compensator

	scale      float64
	size       float64
	burnInMaxX float64
	burnInMaxY float64

	state           State
	keyguardShowing bool
	cfg             Config
	anim            Animation
	placement       Placement
	placementValid  bool
}

// New creates a controller in the Hidden state with no resolved style.
// The host delivers the initial Config through OnConfigChanged (the
// settings subscription fires eagerly at subscribe time).
func New(p Params) *Controller {
	if p.Compensator == nil {
		p.Compensator = NewCompensator(nil)
	}
	return &Controller{
		surface:    p.Surface,
		geometry:   p.Geometry,
		catalog:    p.Catalog,
		comp:       p.Compensator,
		scale:      ResolveScale(Display{Density: p.Scale}),
		size:       orDefault(p.Size, DefaultSize),
		burnInMaxX: p.BurnInMaxX,
		burnInMaxY: p.BurnInMaxY,
	}
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

// State returns the current attachment state.
func (c *Controller) State() State { return c.state }

// Placement returns the last computed placement; the second return is false
// until geometry has been known at least once.
func (c *Controller) Placement() (Placement, bool) {
	return c.placement, c.placementValid
}

// SetKeyguardVisible records keyguard visibility. It never attaches or
// detaches by itself; the hosting shell decides when to call Show or Hide.
func (c *Controller) SetKeyguardVisible(visible bool) {
	c.keyguardShowing = visible
}

// IsAnimationEnabled reports whether the overlay is ready to be shown:
// a style handle is resolved, the sensor geometry is known, and the user
// setting is enabled.
func (c *Controller) IsAnimationEnabled() bool {
	if c.anim == nil || !c.cfg.Enabled {
		return false
	}
	_, known := c.geometry.CurrentAnchor()
	return known
}

// Show transitions Hidden to Shown when the keyguard is visible, a style
// handle is resolved, the sensor geometry is known, and the config is
// enabled. Otherwise it is a no-op. On transition it computes the
// placement, attaches the surface there, and starts the animation loop.
func (c *Controller) Show() {
	if c.state == StateShown {
		return
	}
	if !c.keyguardShowing || !c.cfg.Enabled || c.anim == nil {
		return
	}
	anchor, known := c.geometry.CurrentAnchor()
	if !known {
		return
	}

	c.placement = ComputePlacement(anchor, c.scale, c.size)
	c.placementValid = true

	// Attach races are transient; the intended state is recorded and the
	// next event converges.
	if err := c.surface.Attach(c.placement); err != nil {
		log.Debug("overlay attach: %v", err)
	}
	c.state = StateShown
	c.anim.Start()
}

// Hide transitions Shown to Hidden, stopping and rewinding the animation
// and detaching the surface. Idempotent: calling it while Hidden does
// nothing, and a failed detach never blocks future Show calls.
func (c *Controller) Hide() {
	if c.state == StateHidden {
		return
	}
	c.state = StateHidden
	if c.anim != nil {
		c.anim.Stop()
		c.anim.Rewind()
	}
	if err := c.surface.Detach(); err != nil {
		log.Debug("overlay detach: %v", err)
	}
}

// OnGeometryChanged recomputes the placement from the current anchor. While
// Shown the surface is moved in place. When the geometry is unknown the
// last placement is retained and nothing is updated.
func (c *Controller) OnGeometryChanged() {
	anchor, known := c.geometry.CurrentAnchor()
	if !known {
		return
	}
	c.placement = ComputePlacement(anchor, c.scale, c.size)
	c.placementValid = true
	if c.state == StateShown {
		c.surface.Move(c.placement)
	}
}

// OnConfigChanged installs a new settings snapshot. The style is always
// re-resolved so it stays current, but the handle is only retained while
// enabled, which gates IsAnimationEnabled and Show. Visibility itself is
// not changed here; an already-Shown overlay reflects the new style
// immediately.
func (c *Controller) OnConfigChanged(cfg Config) {
	if c.anim != nil {
		c.anim.Stop()
	}

	var resolved Animation
	if c.catalog != nil {
		resolved = c.catalog.Resolve(cfg.StyleIndex)
	}
	if cfg.Enabled {
		c.anim = resolved
	} else {
		c.anim = nil
	}
	c.cfg = cfg

	c.surface.SetVisual(c.anim)
	if c.state == StateShown && c.anim != nil {
		c.anim.Start()
	}
}

// OnBurnInTick applies the two-axis burn-in translation for the given doze
// progress. Valid regardless of the attachment state; it never transitions
// the state machine.
func (c *Controller) OnBurnInTick(progress float64) {
	dx := c.comp.Offset(AxisX, c.burnInMaxX, progress)
	dy := c.comp.Offset(AxisY, c.burnInMaxY, progress)
	c.surface.Translate(dx, dy)
}
