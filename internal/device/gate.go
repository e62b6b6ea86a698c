package device

import (
	"log/slog"
	"strings"
)

// GamepadClass is the device class accepted by the capability gate.
const GamepadClass = "Gamepad"

// Some controllers expose their motion sensors as a second device that also
// reports the gamepad class; those must not be polled for input.
const motionSensorMarker = "Motion Sensors"

// FilterGamepads reduces an enumerated device list to the devices that are
// actual gamepads. A device whose class or name cannot be read is excluded
// rather than failing the whole enumeration.
func FilterGamepads(logger *slog.Logger, devices []Device) []Device {
	var pads []Device
	for _, dev := range devices {
		class, err := dev.Class()
		if err != nil {
			logger.Warn("skipping device with unreadable class", "error", err)
			continue
		}
		name, err := dev.Name()
		if err != nil {
			logger.Warn("skipping device with unreadable name", "error", err)
			continue
		}
		if class != GamepadClass || strings.Contains(name, motionSensorMarker) {
			logger.Debug("ignoring non-gamepad device", "name", name, "class", class)
			continue
		}
		logger.Info("gamepad detected", "name", name)
		pads = append(pads, dev)
	}
	return pads
}
