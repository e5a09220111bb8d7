// Package elev implements the elevator car: its movement state machine, the
// worker loop that drives it, and passenger transfer at a floor.
package elev

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"elevsim/src/building"
	"elevsim/src/types"
)

var ErrDirectionWhileMoving = errors.New("direction can only change while the elevator is stopped")

// Elevator is shared between its own worker goroutine and the dispatcher.
// Position, destination and direction are guarded by mu; carried passengers
// by passengersMu; destination buttons by their panel.
type Elevator struct {
	capacity       int
	building       *building.Building
	buttons        *building.ButtonPanel
	manager        *PassengerManager
	travelDuration time.Duration
	logger         *slog.Logger

	mu          sync.RWMutex
	floor       int
	destination int // active target of the worker, 0 when none
	assigned    int // latest assignment from the dispatcher, 0 when none
	dir         types.MotorDirection
	behaviour   types.ElevBehaviour
	sleeping    bool
	recall      []int // floors whose call button is pressed again once the car leaves

	passengersMu sync.Mutex
	passengers   []building.Passenger
	delivered    atomic.Int64

	wakeCh  chan struct{}
	stopped atomic.Bool
}

func New(b *building.Building, capacity, startFloor int, travelDuration time.Duration, logger *slog.Logger) (*Elevator, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("elevator capacity must be at least 1, got %d", capacity)
	}
	if !b.HasFloor(startFloor) {
		return nil, fmt.Errorf("start floor %d outside %d..%d", startFloor, b.BottomFloor(), b.TopFloor())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Elevator{
		capacity:       capacity,
		building:       b,
		buttons:        building.NewButtonPanel(types.BT_Destination, b.FloorNumbers()),
		manager:        NewPassengerManager(logger),
		travelDuration: travelDuration,
		logger:         logger,
		floor:          startFloor,
		dir:            types.MD_Up,
		behaviour:      types.Idle,
		wakeCh:         make(chan struct{}, 1),
	}, nil
}

func (e *Elevator) Capacity() int {
	return e.capacity
}

// Buttons is the panel of destination buttons inside the car.
func (e *Elevator) Buttons() *building.ButtonPanel {
	return e.buttons
}

func (e *Elevator) Floor() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.floor
}

// Destination returns the floor the car is currently heading for.
func (e *Elevator) Destination() (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.destination, e.destination != 0
}

// Assigned returns the latest destination handed over by Assign.
func (e *Elevator) Assigned() (int, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.assigned, e.assigned != 0
}

func (e *Elevator) Direction() types.MotorDirection {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dir
}

func (e *Elevator) IsSleeping() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sleeping
}

func (e *Elevator) PassengerCount() int {
	e.passengersMu.Lock()
	defer e.passengersMu.Unlock()
	return len(e.passengers)
}

// Delivered counts passengers unloaded at their destination so far.
func (e *Elevator) Delivered() int {
	return int(e.delivered.Load())
}

// SetDirection changes the scan direction. Rejected while the car is moving.
func (e *Elevator) SetDirection(dir types.MotorDirection) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.behaviour == types.Moving {
		return ErrDirectionWhileMoving
	}
	e.dir = dir
	return nil
}

// Assign hands a new destination to the car and wakes it if it sleeps. A
// stopped car adopts dest at once; a moving car only adopts it at its next
// step check, and only when dest lies between its position and its current
// target. Otherwise dest is taken up once the current trip ends.
func (e *Elevator) Assign(dest int) {
	if !e.building.HasFloor(dest) {
		panic(fmt.Sprintf("elev: assigned destination %d is not a floor", dest))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.assigned = dest
	if e.behaviour != types.Moving {
		e.destination = dest
	}
	if e.sleeping {
		e.sleeping = false
		e.wake()
	}
}

// Stop asks the worker to finish. The current step or transfer completes first.
func (e *Elevator) Stop() {
	e.stopped.Store(true)
	e.wake()
}

// wake never blocks; a pending token is enough to end the next wait.
func (e *Elevator) wake() {
	select {
	case e.wakeCh <- struct{}{}:
	default:
	}
}
