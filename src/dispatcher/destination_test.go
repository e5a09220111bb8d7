package dispatcher

import (
	"slices"
	"testing"

	"elevsim/src/types"
)

func TestWantedFloors(t *testing.T) {
	got := WantedFloors([]int{4, 2}, []int{2, 1, 5})
	if want := []int{1, 2, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("WantedFloors() = %v, expected %v", got, want)
	}
	if got := WantedFloors(nil, nil); len(got) != 0 {
		t.Errorf("WantedFloors(nil, nil) = %v", got)
	}
}

func TestIsMoreDestinationsOnTheWay(t *testing.T) {
	tests := []struct {
		name   string
		floor  int
		dir    types.MotorDirection
		wanted []int
		want   bool
	}{
		{"above going up", 2, types.MD_Up, []int{4}, true},
		{"below going up", 4, types.MD_Up, []int{1, 2}, false},
		{"current floor going up", 3, types.MD_Up, []int{3}, true},
		{"below going down", 4, types.MD_Down, []int{1}, true},
		{"above going down", 2, types.MD_Down, []int{3, 5}, false},
		{"current floor going down", 3, types.MD_Down, []int{3}, true},
		{"nothing wanted", 3, types.MD_Up, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMoreDestinationsOnTheWay(tt.floor, tt.dir, tt.wanted); got != tt.want {
				t.Errorf("IsMoreDestinationsOnTheWay(%d, %v, %v) = %v", tt.floor, tt.dir, tt.wanted, got)
			}
		})
	}
}

func TestLookUp(t *testing.T) {
	tests := []struct {
		name         string
		floor        int
		destinations []int
		wanted       []int
		want         int
		found        bool
	}{
		{"nearest destination", 1, []int{2, 3}, []int{2, 3}, 2, true},
		{"destination at current floor", 3, []int{3, 5}, []int{3, 5}, 3, true},
		{"destination below ignored", 3, []int{1}, []int{1, 4, 5}, 5, true},
		{"farthest call", 1, nil, []int{2, 4}, 4, true},
		{"nothing above", 4, []int{2}, []int{1, 2}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := LookUp(tt.floor, tt.destinations, tt.wanted)
			if got != tt.want || found != tt.found {
				t.Errorf("LookUp() = %d, %v, expected %d, %v", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestLookBelow(t *testing.T) {
	tests := []struct {
		name   string
		floor  int
		wanted []int
		want   int
		found  bool
	}{
		{"nearest below", 5, []int{1, 2}, 2, true},
		{"above ignored", 4, []int{1, 2, 5}, 2, true},
		{"current floor", 3, []int{3, 4}, 3, true},
		{"nothing below", 2, []int{3, 5}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := LookBelow(tt.floor, tt.wanted)
			if got != tt.want || found != tt.found {
				t.Errorf("LookBelow() = %d, %v, expected %d, %v", got, found, tt.want, tt.found)
			}
		})
	}
}
