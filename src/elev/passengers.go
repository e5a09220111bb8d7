package elev

import (
	"log/slog"

	"elevsim/src/building"
)

// PassengerManager moves passengers between a floor and the car.
type PassengerManager struct {
	logger *slog.Logger
}

func NewPassengerManager(logger *slog.Logger) *PassengerManager {
	return &PassengerManager{logger: logger}
}

// Unload splits passengers into those staying on board and those whose
// destination is floor. Nothing is logged when nobody gets off.
func (pm *PassengerManager) Unload(floor *building.Floor, passengers []building.Passenger) (remaining, unloaded []building.Passenger) {
	remaining = passengers[:0:0]
	for _, p := range passengers {
		if p.Destination == floor.Number {
			unloaded = append(unloaded, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	if len(unloaded) > 0 {
		pm.logger.Info("Passengers arrived at their destination floor", "count", len(unloaded), "floor", floor.Number)
	}
	return remaining, unloaded
}

// Load boards waiting passengers in arrival order until the car is full.
// Each boarded passenger presses the destination button for its floor.
// The floor's waiting list and the car's passenger list are both locked for
// the whole transfer.
func (pm *PassengerManager) Load(floor *building.Floor, e *Elevator) int {
	var total int
	loaded := floor.Board(func(waiting []building.Passenger) int {
		e.passengersMu.Lock()
		defer e.passengersMu.Unlock()
		n := 0
		for _, p := range waiting {
			if len(e.passengers) >= e.capacity {
				break
			}
			e.passengers = append(e.passengers, p)
			e.buttons.Press(p.Destination)
			n++
		}
		total = len(e.passengers)
		return n
	})
	pm.logger.Info("New passengers", "floor", floor.Number, "loaded", loaded, "total", total, "capacity", e.capacity)
	return loaded
}
