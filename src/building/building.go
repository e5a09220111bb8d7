// Package building holds the passive shared state of the simulation: floors,
// their waiting passengers and the call buttons that summon the car.
package building

import (
	"fmt"

	"elevsim/src/types"
)

// Building owns floors numbered 1..N. Membership never changes after New.
// Each floor's call button lives in a single panel so that all call buttons are
// guarded at floor-collection granularity.
type Building struct {
	floors []*Floor
	calls  *ButtonPanel
}

func New(numFloors int) (*Building, error) {
	if numFloors < 2 {
		return nil, fmt.Errorf("building needs at least 2 floors, got %d", numFloors)
	}
	b := &Building{floors: make([]*Floor, numFloors)}
	for i := range numFloors {
		b.floors[i] = &Floor{Number: i + 1}
	}
	b.calls = NewButtonPanel(types.BT_Call, b.FloorNumbers())
	return b, nil
}

// Floor panics when number does not exist: buttons and passengers only ever
// reference floors of this building.
func (b *Building) Floor(number int) *Floor {
	if !b.HasFloor(number) {
		panic(fmt.Sprintf("building: no floor %d (floors 1..%d)", number, len(b.floors)))
	}
	return b.floors[number-1]
}

func (b *Building) HasFloor(number int) bool {
	return number >= 1 && number <= len(b.floors)
}

func (b *Building) FloorNumbers() []int {
	numbers := make([]int, len(b.floors))
	for i, f := range b.floors {
		numbers[i] = f.Number
	}
	return numbers
}

func (b *Building) FloorCount() int {
	return len(b.floors)
}

func (b *Building) BottomFloor() int {
	return b.floors[0].Number
}

func (b *Building) TopFloor() int {
	return b.floors[len(b.floors)-1].Number
}

func (b *Building) CallButtons() *ButtonPanel {
	return b.calls
}

// AddPassenger puts p on its origin floor and presses that floor's call
// button as one atomic step.
func (b *Building) AddPassenger(p Passenger) {
	floor := b.Floor(p.Origin)
	if !b.HasFloor(p.Destination) {
		panic(fmt.Sprintf("building: passenger %s has no destination floor %d", p, p.Destination))
	}
	b.calls.PressWith(p.Origin, func() {
		floor.addWaiting(p)
	})
}

// WaitingCount is the total number of passengers waiting on all floors.
func (b *Building) WaitingCount() int {
	total := 0
	for _, f := range b.floors {
		total += f.WaitingCount()
	}
	return total
}
