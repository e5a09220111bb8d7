package elev

import (
	"fmt"
	"strings"

	"elevsim/src/building"
)

// FormatPassengers renders passengers as "[id(origin->dest) ...]" for logs.
func FormatPassengers(passengers []building.Passenger) string {
	if len(passengers) == 0 {
		return "[]"
	}
	parts := make([]string, len(passengers))
	for i, p := range passengers {
		parts[i] = p.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
