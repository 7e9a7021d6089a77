// ABOUTME: Doze progress driver emitting burn-in ticks on the event bus
// ABOUTME: Produces a triangle wave in [0,1] so the halo sweeps back and forth

package main

import (
	"context"
	"time"

	"github.com/halotui/halo/internal/eventbus"
)

// dozeCycle is the duration of a full 0 -> 1 -> 0 sweep.
const dozeCycle = 30 * time.Second

// dozeDriver publishes normalized doze progress at a fixed cadence.
// Listeners marshal themselves onto the UI loop before touching controller
// state.
type dozeDriver struct {
	bus    *eventbus.Bus[float64]
	period time.Duration
}

func newDozeDriver(bus *eventbus.Bus[float64], period time.Duration) *dozeDriver {
	return &dozeDriver{bus: bus, period: period}
}

// run publishes until ctx is cancelled.
func (d *dozeDriver) run(ctx context.Context) {
	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.bus.Publish(progressAt(now.Sub(start)))
		}
	}
}

// progressAt maps elapsed time onto the triangle wave.
func progressAt(elapsed time.Duration) float64 {
	half := dozeCycle / 2
	phase := elapsed % dozeCycle
	if phase < half {
		return float64(phase) / float64(half)
	}
	return 1 - float64(phase-half)/float64(half)
}
