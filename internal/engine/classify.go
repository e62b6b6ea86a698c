package engine

import "github.com/soar/padkeys/internal/device"

// classifier decides, for each raw component, whether a discrete transition
// happened between the tracked state and the new sample, and forwards
// detected transitions to the synthesizer. It mutates st in place; the
// caller owns publishing the updated state.
type classifier struct {
	synth *Synthesizer
}

func (c *classifier) process(deviceIdx int, st *ControllerState, components []device.Component) {
	for _, comp := range components {
		switch {
		case comp.ID == povIdentifier:
			c.synth.povChange(st.Pov, comp.Value)
			st.Pov = comp.Value

		case comp.Analog:
			axis, ok := lookupAxis(comp.ID)
			if !ok {
				continue
			}
			old := st.Axes[axis]
			st.Axes[axis] = comp.Value
			c.synth.axisChange(deviceIdx, axis, old, comp.Value)

		default:
			btn, ok := lookupButton(comp.ID)
			if !ok {
				continue
			}
			pressed := comp.Value > 0.5
			was := st.Buttons[btn]
			st.Buttons[btn] = pressed
			if pressed != was {
				c.synth.buttonEdge(btn, pressed)
			}
		}
	}
}

// Backend is the public contract shared by the polling engine and the
// zero-hardware fallback. The variant is selected once at startup.
type Backend interface {
	Start()
	Stop()
	HasDevices() bool
	DeviceCount() int
	NativeAvailable() bool
}
