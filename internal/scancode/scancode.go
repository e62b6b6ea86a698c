// Package scancode defines the canonical key-event contract shared by every
// input backend. Backends translate whatever they read (joystick telemetry,
// injected keyboard identifiers) into Events and hand them to a Sink; the
// consuming application never sees raw device data.
package scancode

// Code is a canonical discrete key symbol.
type Code int

const (
	None Code = iota
	Enter
	Escape
	Space
	Pause
	Comma
	Period
	LeftShift
	LeftCtrl
	Up
	Down
	Left
	Right
	Key1
	Key2
	Key3
	Key4
	Key5
)

var codeNames = map[Code]string{
	None:      "none",
	Enter:     "enter",
	Escape:    "escape",
	Space:     "space",
	Pause:     "pause",
	Comma:     "comma",
	Period:    "period",
	LeftShift: "lshift",
	LeftCtrl:  "lctrl",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Key1:      "1",
	Key2:      "2",
	Key3:      "3",
	Key4:      "4",
	Key5:      "5",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "unknown"
}

// Direction says whether a key went down or came back up.
type Direction int

const (
	Press Direction = iota
	Release
)

func (d Direction) String() string {
	if d == Press {
		return "down"
	}
	return "up"
}

// Event is one synthesized key transition. Events are produced and consumed
// immediately; they are never stored by the engine.
type Event struct {
	Code Code
	Dir  Direction
}

// Sink receives synthesized events in emission order. A Sink must not block:
// it is called from the polling worker between ticks.
type Sink func(Event)
