package dispatcher

import (
	"slices"

	"elevsim/src/types"
)

// The current floor counts as reachable in either direction, so a request at
// the car's own floor is always "on the way".

// WantedFloors is the sorted union of the floors behind the pressed
// destination and call buttons.
func WantedFloors(destinations, calls []int) []int {
	wanted := make([]int, 0, len(destinations)+len(calls))
	wanted = append(wanted, destinations...)
	wanted = append(wanted, calls...)
	slices.Sort(wanted)
	return slices.Compact(wanted)
}

// IsMoreDestinationsOnTheWay reports whether any wanted floor lies at or
// beyond floor in direction dir.
func IsMoreDestinationsOnTheWay(floor int, dir types.MotorDirection, wanted []int) bool {
	for _, w := range wanted {
		if dir == types.MD_Up && w >= floor {
			return true
		}
		if dir == types.MD_Down && w <= floor {
			return true
		}
	}
	return false
}

// LookUp picks the next stop going up. A pressed destination button wins, the
// nearest one first. Without one the car sweeps to the farthest wanted floor
// above, picking up intermediate destinations on the way.
func LookUp(floor int, destinations, wanted []int) (int, bool) {
	nearest, found := 0, false
	for _, d := range destinations {
		if d >= floor && (!found || d < nearest) {
			nearest, found = d, true
		}
	}
	if found {
		return nearest, true
	}
	farthest := 0
	for _, w := range wanted {
		if w >= floor && (!found || w > farthest) {
			farthest, found = w, true
		}
	}
	return farthest, found
}

// LookBelow picks the nearest wanted floor at or below floor, so a car
// sweeping down stops at every wanted floor on its way.
func LookBelow(floor int, wanted []int) (int, bool) {
	nearest, found := 0, false
	for _, w := range wanted {
		if w <= floor && (!found || w > nearest) {
			nearest, found = w, true
		}
	}
	return nearest, found
}
