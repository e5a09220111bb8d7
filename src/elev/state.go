package elev

import (
	"github.com/tiendc/go-deepcopy"

	"elevsim/src/building"
	"elevsim/src/types"
)

// State is a point-in-time copy of the car, safe to keep and inspect.
type State struct {
	Floor          int
	Destination    int
	Assigned       int
	Dir            types.MotorDirection
	Behaviour      types.ElevBehaviour
	Sleeping       bool
	Capacity       int
	Passengers     []building.Passenger
	PressedButtons []int
	Delivered      int
}

// Passengers returns a deep copy of the passengers on board, detached from
// the car even if Passenger later carries reference fields.
func (e *Elevator) Passengers() []building.Passenger {
	e.passengersMu.Lock()
	defer e.passengersMu.Unlock()
	var passengers []building.Passenger
	if err := deepcopy.Copy(&passengers, e.passengers); err != nil {
		panic(err)
	}
	return passengers
}

// GetState takes each lock in turn; the parts are individually consistent but
// not one atomic picture of the whole car.
func (e *Elevator) GetState() State {
	e.mu.RLock()
	state := State{
		Floor:       e.floor,
		Destination: e.destination,
		Assigned:    e.assigned,
		Dir:         e.dir,
		Behaviour:   e.behaviour,
		Sleeping:    e.sleeping,
		Capacity:    e.capacity,
	}
	e.mu.RUnlock()

	state.Passengers = e.Passengers()
	for _, b := range e.buttons.Pressed() {
		state.PressedButtons = append(state.PressedButtons, b.Floor)
	}
	state.Delivered = e.Delivered()
	return state
}
