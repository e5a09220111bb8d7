// Contains the worker loop and the movement state machine of the car.
package elev

import (
	"context"

	"elevsim/src/building"
	"elevsim/src/timer"
	"elevsim/src/types"
)

// Run is the elevator worker. It sleeps until the dispatcher assigns a
// destination, travels there floor by floor and serves the floor on arrival.
// It returns once Stop has been called or ctx is done.
func (e *Elevator) Run(ctx context.Context) error {
	e.logger.Info("Elevator started", "floor", e.Floor(), "capacity", e.capacity)
	for !e.stopped.Load() && ctx.Err() == nil {
		if !e.waitIfNeeded(ctx) {
			break
		}
		e.goToDestination(ctx)
	}
	e.logger.Info("Elevator stopped", "floor", e.Floor())
	return nil
}

// waitIfNeeded blocks while the car has no destination or already stands at
// it. It reports false when the worker should exit instead of serving.
func (e *Elevator) waitIfNeeded(ctx context.Context) bool {
	e.mu.Lock()
	e.adoptAssigned()
	if e.destination != 0 && e.destination != e.floor {
		e.mu.Unlock()
		return true
	}
	e.sleeping = true
	e.mu.Unlock()

	e.logger.Debug("Waiting for calls")
	select {
	case <-e.wakeCh:
	case <-ctx.Done():
	}

	e.mu.Lock()
	e.sleeping = false
	e.adoptAssigned()
	e.mu.Unlock()
	return !e.stopped.Load() && ctx.Err() == nil
}

// adoptAssigned must be called with e.mu held while the car is stopped.
func (e *Elevator) adoptAssigned() {
	if e.assigned != 0 {
		e.destination = e.assigned
	}
}

// goToDestination is one Idle -> Moving -> Idle cycle, ending with button
// release and passenger transfer at the floor reached.
func (e *Elevator) goToDestination(ctx context.Context) {
	e.logger.Debug("Passengers", "onboard", FormatPassengers(e.Passengers()))

	dest, _ := e.Destination()
	if e.atDestination() {
		e.logger.Info("Already at destination floor", "floor", dest)
	} else {
		e.logger.Info("Moving to destination floor", "floor", dest)
		e.setBehaviour(types.Moving)
		left, cut := false, false
		for !e.atDestination() {
			if err := e.makeStep(ctx); err != nil && !cut {
				cut = true
				e.logger.Warn("Travel cut short", "floor", e.Floor(), "destination", dest, "err", err)
			}
			if !left {
				left = true
				e.recallWaiting()
			}
		}
		e.setBehaviour(types.Idle)
	}
	e.serveFloor()
}

// makeStep moves the car one floor toward its destination, pauses for the
// simulated travel time and then checks for a redirect. The step completes
// even when the pause is interrupted; the interruption is returned.
func (e *Elevator) makeStep(ctx context.Context) error {
	e.mu.Lock()
	if e.floor < e.destination {
		e.floor++
		e.dir = types.MD_Up
	} else {
		e.floor--
		e.dir = types.MD_Down
	}
	floor, dir := e.floor, e.dir
	e.mu.Unlock()

	e.logger.Debug("Moving", "direction", dir, "floor", floor, "floors", e.building.FloorCount())
	err := timer.Pause(ctx, e.travelDuration)
	e.checkRedirect()
	return err
}

// checkRedirect adopts the latest assignment when it is an intermediate stop:
// strictly between the current floor and the current destination.
func (e *Elevator) checkRedirect() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.assigned == 0 || e.assigned == e.destination {
		return
	}
	if isBetween(e.floor, e.assigned, e.destination) {
		e.logger.Info("Redirected to intermediate floor", "from", e.destination, "to", e.assigned, "floor", e.floor)
		e.destination = e.assigned
	}
}

func isBetween(from, candidate, to int) bool {
	return (from < candidate && candidate < to) || (to < candidate && candidate < from)
}

func (e *Elevator) atDestination() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.floor == e.destination
}

func (e *Elevator) setBehaviour(b types.ElevBehaviour) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.behaviour = b
}

func (e *Elevator) serveFloor() {
	floor := e.building.Floor(e.Floor())
	e.releaseButtons(floor.Number)
	e.unloadPassengers(floor)
	e.manager.Load(floor, e)
	if floor.WaitingCount() > 0 {
		e.mu.Lock()
		e.recall = append(e.recall, floor.Number)
		e.mu.Unlock()
		e.logger.Info("Passengers left waiting", "floor", floor.Number, "waiting", floor.WaitingCount())
	}
}

// releaseButtons clears the destination button and the call button of floor.
func (e *Elevator) releaseButtons(floor int) {
	destination := e.buttons.Release(floor)
	call := e.building.CallButtons().Release(floor)
	if destination || call {
		e.logger.Debug("Released buttons", "floor", floor, "destination", destination, "call", call)
	}
}

// recallWaiting presses the call button again for floors where passengers
// were left behind because the car was full. Done once the car has left the
// floor, so the dispatcher does not send it straight back.
func (e *Elevator) recallWaiting() {
	e.mu.Lock()
	recall := e.recall
	e.recall = nil
	e.mu.Unlock()
	for _, floor := range recall {
		if e.building.Floor(floor).WaitingCount() > 0 {
			e.building.CallButtons().Press(floor)
			e.logger.Debug("Call button pressed for passengers left behind", "floor", floor)
		}
	}
}

func (e *Elevator) unloadPassengers(floor *building.Floor) {
	e.passengersMu.Lock()
	remaining, unloaded := e.manager.Unload(floor, e.passengers)
	e.passengers = remaining
	e.passengersMu.Unlock()
	e.delivered.Add(int64(len(unloaded)))
}
