package utils

import (
	"fmt"
	"io"

	"elevsim/src/elev"
)

// PrintStatus overwrites the current terminal line with the car's state.
func PrintStatus(w io.Writer, state elev.State, waiting int) {
	fmt.Fprintf(w, "\rFloor: %d | Dir: %-4s | %-6s | Load: %d/%d | Waiting: %d | Delivered: %d   \r",
		state.Floor, state.Dir, state.Behaviour, len(state.Passengers), state.Capacity, waiting, state.Delivered)
}
