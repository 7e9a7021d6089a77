// ABOUTME: Root Bubble Tea model hosting the overlay controller
// ABOUTME: Its update goroutine is the UI-affine context all controller calls run on

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halotui/halo/internal/log"
	"github.com/halotui/halo/internal/overlay"
	"github.com/halotui/halo/internal/settings"
	"github.com/halotui/halo/internal/style"
)

// uiMsg carries a function marshalled onto the update goroutine. The
// settings subscription's dispatcher wraps every delivery in one.
type uiMsg struct{ fn func() }

// dozeMsg carries doze progress published by the doze driver.
type dozeMsg struct{ progress float64 }

// frameMsg advances the halo animation.
type frameMsg struct{}

// frameTickInterval paces the halo animation in the terminal.
const frameTickInterval = 120 * time.Millisecond

// anchorStepPx is the raw-unit distance one arrow key moves the anchor.
const anchorStepPx = 16.0

// shared holds state that must survive Bubble Tea's model value copies.
// Only the update goroutine writes cfg; the program pointer is set once
// before Run.
type shared struct {
	program *tea.Program
	sub     *settings.Subscription
	cfg     settings.Config
}

func (sh *shared) send(msg tea.Msg) {
	if sh.program != nil {
		sh.program.Send(msg)
	}
}

// catalogAdapter exposes the style catalog through the controller's
// capability-typed boundary.
type catalogAdapter struct {
	catalog *style.Catalog
}

func (a catalogAdapter) Count() int { return a.catalog.Count() }

// Resolve converts the catalog's typed nil into an untyped nil so the
// controller's handle checks behave.
func (a catalogAdapter) Resolve(index int) overlay.Animation {
	if anim := a.catalog.Resolve(index); anim != nil {
		return anim
	}
	return nil
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	sensorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

type appModel struct {
	sh      *shared
	ctrl    *overlay.Controller
	surface *termSurface
	anchor  *movableAnchor
	catalog *style.Catalog
	store   *settings.Store

	width, height int
	keyguard      bool
	progress      float64
	helpShown     bool
}

func newAppModel(sh *shared, ctrl *overlay.Controller, surface *termSurface, anchor *movableAnchor, catalog *style.Catalog, store *settings.Store) appModel {
	// The demo boots on the "keyguard": the overlay is a lock-screen
	// affordance, so it starts eligible to show.
	ctrl.SetKeyguardVisible(true)
	return appModel{
		sh:       sh,
		ctrl:     ctrl,
		surface:  surface,
		anchor:   anchor,
		catalog:  catalog,
		store:    store,
		keyguard: true,
	}
}

func (m appModel) Init() tea.Cmd {
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameTickInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.seedAnchor()
		return m, nil

	case uiMsg:
		msg.fn()
		m.syncVisibility()
		return m, nil

	case dozeMsg:
		m.progress = msg.progress
		m.ctrl.OnBurnInTick(msg.progress)
		return m, nil

	case frameMsg:
		m.surface.Advance()
		return m, frameTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// seedAnchor publishes the first anchor from the window geometry, playing
// the role of the sensor-location authority's first report.
func (m *appModel) seedAnchor() {
	if _, known := m.anchor.CurrentAnchor(); known {
		return
	}
	if m.width == 0 || m.height == 0 {
		return
	}
	m.anchor.Set(overlay.Anchor{
		Center: overlay.Point{
			X: float64(m.width) / 2 * cellPxW,
			Y: float64(m.height) * 0.7 * cellPxH,
		},
		Radius: 20,
	})
	m.ctrl.OnGeometryChanged()
	m.syncVisibility()
}

// syncVisibility is the hosting shell's policy: show whenever the keyguard
// is up and the overlay is ready, hide otherwise.
func (m *appModel) syncVisibility() {
	if m.keyguard && m.ctrl.IsAnimationEnabled() {
		m.ctrl.Show()
	} else {
		m.ctrl.Hide()
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.helpShown = !m.helpShown
		return m, nil

	case "k":
		m.keyguard = !m.keyguard
		m.ctrl.SetKeyguardVisible(m.keyguard)
		m.syncVisibility()
		return m, nil

	case "e":
		m.mutateSettings(func(st *settings.Settings) {
			st.Enabled = !st.Enabled
		})
		return m, nil

	case "n":
		m.mutateSettings(func(st *settings.Settings) {
			count := m.catalog.Count()
			if count > 0 {
				st.Style = (st.Style + 1) % count
			}
		})
		return m, nil

	case "s":
		m.ctrl.Show()
		return m, nil

	case "h":
		m.ctrl.Hide()
		return m, nil

	case "up":
		m.moveAnchor(0, -anchorStepPx)
		return m, nil
	case "down":
		m.moveAnchor(0, anchorStepPx)
		return m, nil
	case "left":
		m.moveAnchor(-anchorStepPx, 0)
		return m, nil
	case "right":
		m.moveAnchor(anchorStepPx, 0)
		return m, nil
	}
	return m, nil
}

func (m *appModel) moveAnchor(dx, dy float64) {
	m.anchor.Nudge(dx, dy)
	m.ctrl.OnGeometryChanged()
}

// mutateSettings edits the settings file and nudges the watcher, so the
// change flows back through the normal subscription path instead of
// touching the controller directly.
func (m *appModel) mutateSettings(edit func(*settings.Settings)) {
	st, err := m.store.Load()
	if err != nil {
		log.Warn("settings load: %v", err)
	}
	edit(&st)
	if err := m.store.Save(st); err != nil {
		log.Warn("settings save: %v", err)
		return
	}
	if m.sh.sub != nil {
		m.sh.sub.ForceCheck()
	}
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}
	if m.helpShown {
		return renderHelp(m.width)
	}

	contentHeight := m.height - 1
	if contentHeight < 1 {
		contentHeight = 1
	}
	rows := make([]string, contentHeight)

	if anchor, known := m.anchor.CurrentAnchor(); known {
		col := int(anchor.Center.X / cellPxW)
		row := int(anchor.Center.Y / cellPxH)
		if row >= 0 && row < len(rows) {
			rows[row] = spliceLine(rows[row], col, "◎")
		}
	}
	m.surface.compose(rows)

	return strings.Join(rows, "\n") + "\n" + m.statusLine()
}

func (m appModel) statusLine() string {
	styleName := "-"
	if names := m.catalog.Names(); len(names) > 0 {
		idx := m.sh.cfg.StyleIndex
		if idx >= 0 && idx < len(names) {
			styleName = names[idx]
		}
	}

	status := fmt.Sprintf(
		" %s  keyguard:%s  enabled:%s  style:%s  doze:%.2f  [?] help",
		accentStyle.Render(m.ctrl.State().String()),
		onOff(m.keyguard),
		onOff(m.sh.cfg.Enabled),
		sensorStyle.Render(styleName),
		m.progress,
	)
	return statusStyle.Render(status)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
