// Package device abstracts the underlying device-access layer. The engine
// only ever sees the Provider/Device contract: enumerate once at startup,
// then sample each device every tick. Each call may fail for one device
// without affecting the others.
package device

// Component is one raw input element read from a device during a sample:
// a button, an axis, or the point-of-view hat.
type Component struct {
	// ID is the vendor-reported identifier, e.g. "A", "Button._3",
	// "button 7", "x", "Axis.RZ" or "pov".
	ID string
	// Value is the current reading. Buttons report 0 or 1, axes report
	// a normalized value in [-1, 1], the hat reports one of the POV
	// fractions (0.25/0.5/0.75/1.0) or 0 when centered.
	Value float32
	// Analog is true for axes, false for buttons and the hat.
	Analog bool
}

// Device is an opaque handle to one enumerated input device.
type Device interface {
	// Class reports the device class string, e.g. "Gamepad".
	Class() (string, error)
	// Name reports the vendor device name.
	Name() (string, error)
	// Sample reads the current value of every component on the device.
	Sample() ([]Component, error)
}

// Provider enumerates input devices. Enumeration runs once at startup; the
// resulting device set is fixed for the process lifetime.
type Provider interface {
	Enumerate() ([]Device, error)
	Close()
}
