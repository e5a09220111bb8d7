// Package dispatcher decides where the car goes next. It polls the button
// panels, runs a SCAN policy over the pressed floors and assigns the result to
// the car.
package dispatcher

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"elevsim/src/building"
	"elevsim/src/timer"
	"elevsim/src/types"
)

// Car is the view of the elevator the dispatcher works with.
type Car interface {
	Floor() int
	Direction() types.MotorDirection
	SetDirection(dir types.MotorDirection) error
	Assigned() (int, bool)
	IsSleeping() bool
	Assign(dest int)
	Buttons() *building.ButtonPanel
}

type Dispatcher struct {
	car      Car
	reader   *ButtonReader
	interval time.Duration
	logger   *slog.Logger
	stopped  atomic.Bool
}

func New(b *building.Building, car Car, interval time.Duration, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		car:      car,
		reader:   NewButtonReader(b.CallButtons(), car.Buttons()),
		interval: interval,
		logger:   logger,
	}
}

// Run polls every interval until Stop is called or ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("Dispatcher started", "interval", d.interval)
	for !d.stopped.Load() && ctx.Err() == nil {
		d.Cycle()
		if err := timer.Pause(ctx, d.interval); err != nil {
			d.logger.Warn("Polling pause interrupted", "err", err)
		}
	}
	d.logger.Info("Dispatcher stopped")
	return nil
}

func (d *Dispatcher) Stop() {
	d.stopped.Store(true)
}

// Cycle makes one dispatch decision and returns the floor it assigned, if any.
func (d *Dispatcher) Cycle() (int, bool) {
	destinationButtons := d.reader.PressedDestinationButtons()
	callButtons := d.reader.PressedCallButtons()
	destinations := Floors(destinationButtons)
	calls := Floors(callButtons)
	wanted := WantedFloors(destinations, calls)
	if len(wanted) == 0 {
		return 0, false
	}
	d.logger.Debug("Pressed buttons", "destination", formatButtons(destinationButtons), "call", formatButtons(callButtons))

	floor := d.car.Floor()
	dir := d.car.Direction()
	if !IsMoreDestinationsOnTheWay(floor, dir, wanted) {
		if err := d.car.SetDirection(dir.Toggle()); err != nil {
			d.logger.Debug("Direction change postponed", "floor", floor, "err", err)
		} else {
			dir = dir.Toggle()
			d.logger.Info("Changed direction", "direction", dir, "floor", floor)
		}
	}

	var next int
	var ok bool
	if dir == types.MD_Up {
		next, ok = LookUp(floor, destinations, wanted)
	} else {
		next, ok = LookBelow(floor, wanted)
	}
	if !ok {
		return 0, false
	}

	assigned, _ := d.car.Assigned()
	if next == assigned && !d.car.IsSleeping() {
		return 0, false
	}
	d.logger.Info("Assigned destination", "floor", next, "direction", dir, "from", floor, "wanted", wanted)
	d.car.Assign(next)
	return next, true
}
