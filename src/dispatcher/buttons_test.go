package dispatcher

import (
	"slices"
	"testing"

	"elevsim/src/building"
	"elevsim/src/types"
)

func TestButtonReaderSnapshots(t *testing.T) {
	b, _ := building.New(5)
	destinations := building.NewButtonPanel(types.BT_Destination, b.FloorNumbers())
	b.AddPassenger(building.NewPassenger(4, 1))
	destinations.Press(2)
	r := NewButtonReader(b.CallButtons(), destinations)

	calls := r.PressedCallButtons()
	if got := Floors(calls); !slices.Equal(got, []int{4}) {
		t.Errorf("call floors = %v", got)
	}
	pressed := r.PressedDestinationButtons()
	if got := formatButtons(pressed); got != "Destination(2)" {
		t.Errorf("formatButtons() = %q", got)
	}
	if got := formatButtons(append(calls, pressed...)); got != "Call(4) Destination(2)" {
		t.Errorf("formatButtons() = %q", got)
	}
	if !destinations.IsPressed(2) {
		t.Error("reading must not release buttons")
	}
}
