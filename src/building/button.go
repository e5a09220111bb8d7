package building

import (
	"fmt"
	"sort"
	"sync"

	"elevsim/src/types"
)

// Button is a request for service at Floor. It carries no lock of its own;
// the panel that holds it guards every access.
type Button struct {
	Floor   int
	Type    types.ButtonType
	Pressed bool
}

func (b *Button) press() {
	b.Pressed = true
}

// release reports whether the button was pressed before the call.
func (b *Button) release() bool {
	was := b.Pressed
	b.Pressed = false
	return was
}

func (b Button) String() string {
	return fmt.Sprintf("%s(%d)", b.Type, b.Floor)
}

// ButtonPanel is a mutex-guarded set of buttons, one per floor.
// Used both for the floors' call buttons and for the car's destination buttons.
type ButtonPanel struct {
	mu      sync.Mutex
	kind    types.ButtonType
	buttons map[int]*Button
}

func NewButtonPanel(kind types.ButtonType, floors []int) *ButtonPanel {
	p := &ButtonPanel{kind: kind, buttons: make(map[int]*Button, len(floors))}
	for _, f := range floors {
		p.buttons[f] = &Button{Floor: f, Type: kind}
	}
	return p
}

// button must be called with p.mu held. An unknown floor is an invariant
// violation, not a runtime condition.
func (p *ButtonPanel) button(floor int) *Button {
	b, ok := p.buttons[floor]
	if !ok {
		panic(fmt.Sprintf("building: no %s button for floor %d", p.kind, floor))
	}
	return b
}

func (p *ButtonPanel) Press(floor int) {
	p.PressWith(floor, nil)
}

// PressWith runs fn and presses the button as one step under the panel lock,
// so state published by fn becomes visible together with the press.
func (p *ButtonPanel) PressWith(floor int, fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b := p.button(floor)
	if fn != nil {
		fn()
	}
	b.press()
}

// Release clears the button and reports whether it had been pressed.
func (p *ButtonPanel) Release(floor int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.button(floor).release()
}

func (p *ButtonPanel) IsPressed(floor int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.button(floor).Pressed
}

// Pressed returns a copy of every pressed button, ordered by floor.
func (p *ButtonPanel) Pressed() []Button {
	p.mu.Lock()
	pressed := make([]Button, 0, len(p.buttons))
	for _, b := range p.buttons {
		if b.Pressed {
			pressed = append(pressed, *b)
		}
	}
	p.mu.Unlock()

	sort.Slice(pressed, func(i, j int) bool { return pressed[i].Floor < pressed[j].Floor })
	return pressed
}
