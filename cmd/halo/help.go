// ABOUTME: Help text rendered with glamour for the in-app help overlay
// ABOUTME: Falls back to raw markdown when the renderer cannot be built

package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# halo

A sensor halo overlay demo. The halo tracks the sensor anchor, follows the
display scale, and drifts with burn-in protection while dozing.

## Keys

| Key | Action |
|-----|--------|
| k | toggle keyguard visibility |
| e | toggle the enabled setting |
| n | cycle to the next style |
| s / h | show / hide the overlay |
| arrows | move the sensor anchor |
| ? | toggle this help |
| q | quit |

Settings live in the YAML file given by ` + "`-config`" + ` and reload
while the app runs; edit the file externally to watch the overlay react.
`

// renderHelp returns the terminal-styled help text for the given width.
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(rendered, "\n ")
}
