package engine

import "github.com/soar/padkeys/internal/scancode"

// Button is a canonical, device-independent button slot.
type Button int

const (
	ButtonA Button = iota // Cross / A
	ButtonB               // Circle / B
	ButtonX               // Square / X
	ButtonY               // Triangle / Y
	ButtonLB
	ButtonRB
	ButtonBack
	ButtonStart
	ButtonLS // left stick click
	ButtonRS // right stick click
)

// Axis is a canonical, device-independent axis slot.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
)

// povIdentifier marks the directional-pad component in a raw sample.
const povIdentifier = "pov"

// buttonIdentifiers normalizes every vendor form of a button identifier to
// its canonical slot: named DualSense-style identifiers, the dotted driver
// notation, and plain numeric fallbacks.
var buttonIdentifiers = map[string]Button{
	"A":           ButtonA,
	"B":           ButtonB,
	"X":           ButtonX,
	"Y":           ButtonY,
	"Select":      ButtonBack,
	"Start":       ButtonStart,
	"Mode":        ButtonBack, // PS / guide button
	"Left Thumb":  ButtonLS,
	"Right Thumb": ButtonRS,

	"Button._0": ButtonA,
	"Button._1": ButtonB,
	"Button._2": ButtonX,
	"Button._3": ButtonY,
	"Button._4": ButtonLB,
	"Button._5": ButtonRB,
	"Button._6": ButtonBack,
	"Button._7": ButtonStart,
	"Button._8": ButtonLS,
	"Button._9": ButtonRS,

	"button 0": ButtonA,
	"button 1": ButtonB,
	"button 2": ButtonX,
	"button 3": ButtonY,
	"button 4": ButtonLB,
	"button 5": ButtonRB,
	"button 6": ButtonBack,
	"button 7": ButtonStart,
	"button 8": ButtonLS,
	"button 9": ButtonRS,
}

// axisIdentifiers covers the lower-case and dotted vendor forms.
var axisIdentifiers = map[string]Axis{
	"x":  AxisLeftX,
	"y":  AxisLeftY,
	"rx": AxisRightX,
	"ry": AxisRightY,
	"z":  AxisLeftTrigger,
	"rz": AxisRightTrigger,

	"Axis.X":  AxisLeftX,
	"Axis.Y":  AxisLeftY,
	"Axis.RX": AxisRightX,
	"Axis.RY": AxisRightY,
	"Axis.Z":  AxisLeftTrigger,
	"Axis.RZ": AxisRightTrigger,
}

func lookupButton(id string) (Button, bool) {
	b, ok := buttonIdentifiers[id]
	return b, ok
}

func lookupAxis(id string) (Axis, bool) {
	a, ok := axisIdentifiers[id]
	return a, ok
}

// buttonCodes binds canonical button slots to the scan codes they emit.
// ButtonA is absent on purpose: the confirm button is special-cased in the
// synthesizer to emit two codes at once.
var buttonCodes = map[Button]scancode.Code{
	ButtonB:     scancode.Escape,
	ButtonX:     scancode.Space,
	ButtonY:     scancode.Key1,
	ButtonLB:    scancode.Comma,
	ButtonRB:    scancode.Period,
	ButtonBack:  scancode.Escape,
	ButtonStart: scancode.Pause,
	ButtonLS:    scancode.LeftShift,
	ButtonRS:    scancode.LeftShift,
}
