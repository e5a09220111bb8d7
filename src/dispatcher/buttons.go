package dispatcher

import (
	"strings"

	"elevsim/src/building"
)

// ButtonReader takes snapshots of the pressed buttons. Each panel is read
// under its own lock; the two snapshots are not taken atomically together.
type ButtonReader struct {
	calls        *building.ButtonPanel
	destinations *building.ButtonPanel
}

func NewButtonReader(calls, destinations *building.ButtonPanel) *ButtonReader {
	return &ButtonReader{calls: calls, destinations: destinations}
}

// PressedDestinationButtons returns the pressed buttons inside the car.
func (r *ButtonReader) PressedDestinationButtons() []building.Button {
	return r.destinations.Pressed()
}

// PressedCallButtons returns the pressed call buttons on the floors.
func (r *ButtonReader) PressedCallButtons() []building.Button {
	return r.calls.Pressed()
}

// Floors extracts the floor numbers of buttons, keeping their order.
func Floors(buttons []building.Button) []int {
	floors := make([]int, len(buttons))
	for i, b := range buttons {
		floors[i] = b.Floor
	}
	return floors
}

// formatButtons renders buttons as "Call(2) Destination(5)" for logs.
func formatButtons(buttons []building.Button) string {
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}
