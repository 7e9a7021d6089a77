// ABOUTME: Tests for the terminal render surface
// ABOUTME: Covers attach races, visual swaps, and frame composition into rows

package main

import (
	"strings"
	"testing"

	"github.com/halotui/halo/internal/overlay"
	"github.com/halotui/halo/internal/style"
)

func TestTermSurface_AttachTwiceFails(t *testing.T) {
	t.Parallel()

	s := newTermSurface()
	if err := s.Attach(overlay.Placement{X: 10, Y: 10}); err != nil {
		t.Fatalf("first attach: %v", err)
	}
	if err := s.Attach(overlay.Placement{}); err == nil {
		t.Error("second attach must fail like a compositor token race")
	}
}

func TestTermSurface_DetachWithoutAttachFails(t *testing.T) {
	t.Parallel()

	s := newTermSurface()
	if err := s.Detach(); err == nil {
		t.Error("detach without attach must fail")
	}
	if err := s.Attach(overlay.Placement{}); err != nil {
		t.Fatalf("attach after failed detach: %v", err)
	}
}

func TestTermSurface_SetVisual(t *testing.T) {
	t.Parallel()

	s := newTermSurface()
	anim := style.NewCatalog().Resolve(0)
	s.SetVisual(anim)
	if s.visual != anim {
		t.Error("resolved animation not installed")
	}

	s.SetVisual(nil)
	if s.visual != nil {
		t.Error("nil visual must clear the background")
	}
}

func TestTermSurface_ComposeClipsAndPlaces(t *testing.T) {
	t.Parallel()

	s := newTermSurface()
	anim := style.NewCatalog().Resolve(0)
	anim.Start()
	s.SetVisual(anim)

	// Place at cell (4, 1): X = 4*cellPxW, Y = 1*cellPxH.
	if err := s.Attach(overlay.Placement{X: 4 * cellPxW, Y: 1 * cellPxH}); err != nil {
		t.Fatal(err)
	}

	rows := make([]string, 8)
	s.compose(rows)

	joined := strings.Join(rows, "\n")
	if !strings.Contains(joined, "◉") {
		t.Error("composed rows do not contain the halo frame")
	}
	if rows[0] != "" {
		t.Errorf("row above the placement touched: %q", rows[0])
	}

	// Clipping: a far negative origin must not panic or write.
	s.Move(overlay.Placement{X: -500, Y: -500})
	clipped := make([]string, 3)
	s.compose(clipped)
	for i, r := range clipped {
		if strings.TrimSpace(r) != "" {
			t.Errorf("clipped row %d contains %q", i, r)
		}
	}
}

func TestTermSurface_TranslateShiftsOrigin(t *testing.T) {
	t.Parallel()

	s := newTermSurface()
	if err := s.Attach(overlay.Placement{X: 8 * cellPxW, Y: 4 * cellPxH}); err != nil {
		t.Fatal(err)
	}

	col, row := s.cellOrigin()
	s.Translate(2*cellPxW, -1*cellPxH)
	col2, row2 := s.cellOrigin()

	if col2 != col+2 || row2 != row-1 {
		t.Errorf("origin moved (%d,%d) -> (%d,%d), want (+2,-1) cells", col, row, col2, row2)
	}
}

func TestSpliceLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		col  int
		text string
		want string
	}{
		{name: "pad and insert", base: "", col: 3, text: "ab", want: "   ab"},
		{name: "overwrite", base: "xxxxxx", col: 2, text: "yy", want: "xxyyxx"},
		{name: "negative clips", base: "", col: -1, text: "abc", want: "bc"},
		{name: "fully clipped", base: "zz", col: -5, text: "abc", want: "zz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := spliceLine(tt.base, tt.col, tt.text); got != tt.want {
				t.Errorf("spliceLine(%q, %d, %q) = %q, want %q", tt.base, tt.col, tt.text, got, tt.want)
			}
		})
	}
}
