package device

import (
	"fmt"
	"log/slog"

	"github.com/jupiterrider/purego-sdl3/sdl"
)

const (
	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

// SDL hat masks are reported to the engine as the canonical POV fractions.
func hatToPov(hat uint8) float32 {
	switch hat {
	case hatUp:
		return 0.25
	case hatRight:
		return 0.5
	case hatDown:
		return 0.75
	case hatLeft:
		return 1.0
	default:
		// Diagonals and centered both read as centered.
		return 0
	}
}

// normalizeAxis converts a raw SDL axis value (-32768..32767) to -1.0..1.0.
func normalizeAxis(raw int16) float32 {
	v := float32(raw) / 32767
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// Axis indexes follow the conventional joystick layout; anything beyond rz
// gets a numeric identifier the engine will not map.
var axisIdentifiers = [...]string{"x", "y", "rx", "ry", "z", "rz"}

// SDLProvider reads real devices through the SDL3 joystick API.
type SDLProvider struct {
	logger *slog.Logger
	opened []*sdlDevice
}

// NewSDLProvider initializes the SDL joystick subsystem. It fails when the
// native library cannot be loaded, in which case the caller should fall back
// to a zero-hardware backend.
func NewSDLProvider(logger *slog.Logger) (*SDLProvider, error) {
	if !sdl.Init(sdl.InitJoystick) {
		return nil, fmt.Errorf("sdl joystick init: %s", sdl.GetError())
	}
	logger.Info("SDL3 joystick subsystem initialized")
	return &SDLProvider{logger: logger}, nil
}

// Enumerate opens every joystick currently attached. Devices that fail to
// open are logged and skipped.
func (p *SDLProvider) Enumerate() ([]Device, error) {
	ids := sdl.GetJoysticks()
	devices := make([]Device, 0, len(ids))
	for _, id := range ids {
		js := sdl.OpenJoystick(id)
		if js == nil {
			p.logger.Warn("failed to open joystick", "id", id, "error", sdl.GetError())
			continue
		}
		dev := &sdlDevice{
			joystick: js,
			name:     sdl.GetJoystickName(js),
			class:    classOf(sdl.GetJoystickType(js)),
			axes:     sdl.GetNumJoystickAxes(js),
			buttons:  sdl.GetNumJoystickButtons(js),
			hats:     sdl.GetNumJoystickHats(js),
		}
		p.logger.Info("joystick opened",
			"name", dev.name,
			"vendor", fmt.Sprintf("%04X", sdl.GetJoystickVendor(js)),
			"product", fmt.Sprintf("%04X", sdl.GetJoystickProduct(js)),
			"class", dev.class,
			"axes", dev.axes,
			"buttons", dev.buttons,
			"hats", dev.hats)
		p.opened = append(p.opened, dev)
		devices = append(devices, dev)
	}
	return devices, nil
}

// Close releases every opened joystick and shuts down SDL.
func (p *SDLProvider) Close() {
	for _, dev := range p.opened {
		sdl.CloseJoystick(dev.joystick)
	}
	p.opened = nil
	sdl.Quit()
}

func classOf(t sdl.JoystickType) string {
	if t == sdl.JoystickTypeGamepad {
		return GamepadClass
	}
	return "Joystick"
}

type sdlDevice struct {
	joystick *sdl.Joystick
	name     string
	class    string
	axes     int32
	buttons  int32
	hats     int32
}

func (d *sdlDevice) Class() (string, error) { return d.class, nil }
func (d *sdlDevice) Name() (string, error)  { return d.name, nil }

// Sample flattens the joystick's current state into identifier/value pairs.
func (d *sdlDevice) Sample() ([]Component, error) {
	if !sdl.JoystickConnected(d.joystick) {
		return nil, fmt.Errorf("joystick %q disconnected", d.name)
	}

	// SDL refreshes joystick state only when asked; without an event pump
	// running this must happen before reading.
	sdl.UpdateJoysticks()

	components := make([]Component, 0, d.axes+d.buttons+1)
	for i := int32(0); i < d.axes; i++ {
		id := fmt.Sprintf("axis %d", i)
		if int(i) < len(axisIdentifiers) {
			id = axisIdentifiers[i]
		}
		components = append(components, Component{
			ID:     id,
			Value:  normalizeAxis(sdl.GetJoystickAxis(d.joystick, i)),
			Analog: true,
		})
	}
	for i := int32(0); i < d.buttons; i++ {
		var v float32
		if sdl.GetJoystickButton(d.joystick, i) {
			v = 1
		}
		components = append(components, Component{
			ID:    fmt.Sprintf("button %d", i),
			Value: v,
		})
	}
	if d.hats > 0 {
		components = append(components, Component{
			ID:    "pov",
			Value: hatToPov(sdl.GetJoystickHat(d.joystick, 0)),
		})
	}
	return components, nil
}
