// ABOUTME: Entry point for the halo overlay demo
// ABOUTME: Wires settings, styles, geometry, and the controller into the TUI host

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/halotui/halo/internal/dispatch"
	"github.com/halotui/halo/internal/eventbus"
	"github.com/halotui/halo/internal/log"
	"github.com/halotui/halo/internal/overlay"
	"github.com/halotui/halo/internal/settings"
	"github.com/halotui/halo/internal/style"
)

var (
	version = "dev"
	commit  = "unknown"
)

const dozeTickPeriod = 250 * time.Millisecond

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("halo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if err := settings.LoadEnvFile(args.envFile); err != nil {
		log.Warn("%v", err)
	}

	store := settings.NewStore(args.configPath)
	st, err := store.Load()
	if err != nil {
		log.Warn("settings load: %v (using defaults)", err)
	}

	catalog := style.NewCatalog()
	if err := catalog.LoadDir(st.StyleDir); err != nil {
		log.Warn("user styles: %v", err)
	}

	if args.listStyles {
		for i, name := range catalog.Names() {
			fmt.Printf("%d\t%s\n", i, name)
		}
		return nil
	}

	if args.styleName != "" {
		if _, err := catalog.ResolveName(args.styleName); err != nil {
			return err
		}
		idx, _ := catalog.IndexOf(args.styleName)
		st.Style = idx
		if err := store.Save(st); err != nil {
			return fmt.Errorf("persisting style selection: %w", err)
		}
	}

	scale := st.Scale
	if args.scale > 0 {
		scale = args.scale
	}

	anchor := newMovableAnchor()
	surface := newTermSurface()
	ctrl := overlay.New(overlay.Params{
		Surface:    surface,
		Geometry:   anchor,
		Catalog:    catalogAdapter{catalog: catalog},
		Scale:      scale,
		BurnInMaxX: st.BurnInOffsetX,
		BurnInMaxY: st.BurnInOffsetY,
	})

	sh := &shared{}
	m := newAppModel(sh, ctrl, surface, anchor, catalog, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	sh.program = p

	// Settings deliveries are marshalled onto the update goroutine, so the
	// callback below runs on the UI-affine context. Program.Send blocks
	// until the program is receiving, so the forwarding happens on a
	// serial queue's owner goroutine: Subscribe's eager delivery fires
	// before p.Run starts, and later deliveries originate from the update
	// loop itself via ForceCheck. Sending from either caller would wedge.
	queue := dispatch.NewSerial(8)
	go queue.Run()
	defer queue.Stop()
	disp := dispatch.Func(func(fn func()) {
		queue.Dispatch(func() { sh.send(uiMsg{fn: fn}) })
	})
	sub := settings.Subscribe(store, catalog, disp, func(cfg settings.Config) {
		sh.cfg = cfg
		ctrl.OnConfigChanged(overlay.Config{
			Enabled:    cfg.Enabled,
			StyleIndex: cfg.StyleIndex,
		})
	})
	sh.sub = sub
	defer sub.Close()

	bus := eventbus.New[float64]()
	bus.Subscribe(func(progress float64) {
		sh.send(dozeMsg{progress: progress})
	})
	driver := newDozeDriver(bus, dozeTickPeriod)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		driver.run(gctx)
		return nil
	})

	return g.Wait()
}
