// Package generator feeds the building with passengers at a fixed interval.
package generator

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"elevsim/src/building"
	"elevsim/src/timer"
)

type Generator struct {
	building  *building.Building
	interval  time.Duration
	logger    *slog.Logger
	stopped   atomic.Bool
	generated atomic.Int64

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New returns a generator seeded with seed. The same seed gives the same
// sequence of passengers.
func New(b *building.Building, interval time.Duration, seed uint64, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		building: b,
		interval: interval,
		logger:   logger,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Run creates one residential passenger every interval until Stop is called
// or ctx is done.
func (g *Generator) Run(ctx context.Context) error {
	g.logger.Info("Generator started", "interval", g.interval)
	for !g.stopped.Load() && ctx.Err() == nil {
		g.ResidentialPassenger()
		if err := timer.Pause(ctx, g.interval); err != nil {
			g.logger.Warn("Generation pause interrupted", "err", err)
		}
	}
	g.logger.Info("Generator stopped")
	return nil
}

func (g *Generator) Stop() {
	g.stopped.Store(true)
}

// ResidentialPassenger creates a passenger travelling between the bottom floor
// and the floor they live on. Half of them start at the bottom floor.
func (g *Generator) ResidentialPassenger() building.Passenger {
	bottom := g.building.BottomFloor()
	g.mu.Lock()
	var origin, dest int
	if g.rng.IntN(2) == 0 {
		origin = bottom
		dest = g.randomFloorExcept(bottom)
	} else {
		origin = g.randomFloorExcept(bottom)
		dest = bottom
	}
	g.mu.Unlock()
	return g.CreatePassenger(origin, dest)
}

// CreatePassenger places a passenger at origin heading for dest and presses
// the call button there. Unknown floors panic.
func (g *Generator) CreatePassenger(origin, dest int) building.Passenger {
	p := building.NewPassenger(origin, dest)
	g.building.AddPassenger(p)
	g.generated.Add(1)
	g.logger.Info("Generated passenger", "id", p.ID, "floor", origin, "destination", dest)
	return p
}

// Generated counts every passenger created so far.
func (g *Generator) Generated() int {
	return int(g.generated.Load())
}

// randomFloorExcept must be called with g.mu held.
func (g *Generator) randomFloorExcept(exclude int) int {
	options := make([]int, 0, g.building.FloorCount()-1)
	for _, f := range g.building.FloorNumbers() {
		if f != exclude {
			options = append(options, f)
		}
	}
	return options[g.rng.IntN(len(options))]
}
