package building

import (
	"sync"

	"github.com/tiendc/go-deepcopy"
)

// Floor holds the passengers waiting at one floor, in arrival order.
type Floor struct {
	Number int

	mu      sync.Mutex
	waiting []Passenger
}

func (f *Floor) addWaiting(p Passenger) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waiting = append(f.waiting, p)
}

func (f *Floor) WaitingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.waiting)
}

// Waiting returns a deep copy of the waiting list. Passenger is a flat value
// today; the deep copy keeps snapshots detached should it gain reference fields.
func (f *Floor) Waiting() []Passenger {
	f.mu.Lock()
	defer f.mu.Unlock()
	var waiting []Passenger
	if err := deepcopy.Copy(&waiting, f.waiting); err != nil {
		panic(err)
	}
	return waiting
}

// Board hands the waiting list to take while the floor lock is held. take
// returns how many passengers from the front of the list it accepted; those
// are removed before the lock is released, so a passenger can never be both
// boarded and still waiting.
func (f *Floor) Board(take func(waiting []Passenger) int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := take(f.waiting)
	if n <= 0 {
		return 0
	}
	if n > len(f.waiting) {
		n = len(f.waiting)
	}
	f.waiting = append(f.waiting[:0:0], f.waiting[n:]...)
	return n
}
