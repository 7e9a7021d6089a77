// ABOUTME: Terminal render surface backing the overlay controller
// ABOUTME: Maps screen-space placement to cells and composes halo frames into view rows

package main

import (
	"fmt"
	"strings"

	"github.com/halotui/halo/internal/overlay"
	"github.com/halotui/halo/internal/style"
)

// Cell geometry used to map screen-space units onto terminal cells.
const (
	cellPxW = 8.0
	cellPxH = 16.0
)

// termSurface draws the halo into the TUI's cell grid. All methods run on
// the Bubble Tea update goroutine, which is the overlay's UI-affine
// context, so no locking is needed.
type termSurface struct {
	attached  bool
	placement overlay.Placement
	dx, dy    float64
	visual    *style.Animation
}

func newTermSurface() *termSurface {
	return &termSurface{}
}

// Attach implements overlay.Surface. Attaching twice fails like a
// compositor token race would; the controller swallows it.
func (s *termSurface) Attach(p overlay.Placement) error {
	if s.attached {
		return fmt.Errorf("surface already attached")
	}
	s.attached = true
	s.placement = p
	return nil
}

// Detach implements overlay.Surface.
func (s *termSurface) Detach() error {
	if !s.attached {
		return fmt.Errorf("surface not attached")
	}
	s.attached = false
	return nil
}

// Move implements overlay.Surface.
func (s *termSurface) Move(p overlay.Placement) {
	s.placement = p
}

// Translate implements overlay.Surface.
func (s *termSurface) Translate(dx, dy float64) {
	s.dx, s.dy = dx, dy
}

// SetVisual implements overlay.Surface. Only animations resolved by the
// style catalog can be drawn; nil clears the background.
func (s *termSurface) SetVisual(a overlay.Animation) {
	if a == nil {
		s.visual = nil
		return
	}
	anim, ok := a.(*style.Animation)
	if !ok {
		s.visual = nil
		return
	}
	s.visual = anim
}

// Advance steps the drawn animation by one frame.
func (s *termSurface) Advance() {
	if s.visual != nil {
		s.visual.Advance()
	}
}

// cellOrigin returns the top-left cell of the translated placement.
func (s *termSurface) cellOrigin() (col, row int) {
	col = int((s.placement.X + s.dx) / cellPxW)
	row = int((s.placement.Y + s.dy) / cellPxH)
	return col, row
}

// compose draws the current frame into rows, a mutable slice of display
// lines. Rows outside the grid are clipped.
func (s *termSurface) compose(rows []string) {
	if !s.attached || s.visual == nil {
		return
	}
	frame := s.visual.Frame()
	if frame == "" {
		return
	}

	col, row := s.cellOrigin()
	for i, line := range strings.Split(frame, "\n") {
		r := row + i
		if r < 0 || r >= len(rows) {
			continue
		}
		rows[r] = spliceLine(rows[r], col, line)
	}
}

// spliceLine overlays text onto base starting at col, padding with spaces
// as needed. Negative columns clip the text's left edge.
func spliceLine(base string, col int, text string) string {
	runes := []rune(text)
	if col < 0 {
		if -col >= len(runes) {
			return base
		}
		runes = runes[-col:]
		col = 0
	}

	baseRunes := []rune(base)
	for len(baseRunes) < col+len(runes) {
		baseRunes = append(baseRunes, ' ')
	}
	copy(baseRunes[col:], runes)
	return string(baseRunes)
}
