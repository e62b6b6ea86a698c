// Package fallback is the zero-hardware input backend. It satisfies the
// same contract as the polling engine but synthesizes events directly from
// externally supplied keyboard identifiers, for sessions where no real
// device path exists.
package fallback

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/soar/padkeys/internal/scancode"
)

// keyTable maps keyboard-style key identifiers to the scan codes they
// simulate. WASD and the arrow keys both drive directional navigation.
var keyTable = map[string]scancode.Code{
	"w":     scancode.Up,
	"s":     scancode.Down,
	"a":     scancode.Left,
	"d":     scancode.Right,
	"up":    scancode.Up,
	"down":  scancode.Down,
	"left":  scancode.Left,
	"right": scancode.Right,

	"enter":  scancode.Enter,
	"space":  scancode.Space,
	"escape": scancode.Escape,
	"ctrl":   scancode.LeftCtrl,
	"shift":  scancode.LeftShift,

	"1": scancode.Key1,
	"2": scancode.Key2,
	"3": scancode.Key3,
	"4": scancode.Key4,
	"5": scancode.Key5,
	",": scancode.Comma,
	".": scancode.Period,
}

// Backend simulates gamepad input from keyboard identifiers. It never
// reports real devices or native-library availability, so callers can
// reliably tell "no real input device path" from "a device is connected".
type Backend struct {
	logger  *slog.Logger
	sink    scancode.Sink
	enabled atomic.Bool
}

func New(logger *slog.Logger, sink scancode.Sink) *Backend {
	logger.Info("fallback input backend initialized (keyboard-based)")
	return &Backend{logger: logger, sink: sink}
}

func (b *Backend) Start() {
	b.enabled.Store(true)
	b.logger.Info("fallback input backend started, keyboard controls active")
}

func (b *Backend) Stop() {
	b.enabled.Store(false)
	b.logger.Info("fallback input backend stopped")
}

// HasDevices is always false: the fallback never has real gamepads.
func (b *Backend) HasDevices() bool { return false }

// NativeAvailable is always false: running the fallback means the native
// device path is unavailable.
func (b *Backend) NativeAvailable() bool { return false }

// DeviceCount reports the one simulated pad while enabled.
func (b *Backend) DeviceCount() int {
	if b.enabled.Load() {
		return 1
	}
	return 0
}

// Press simulates a button press for the given key identifier. Unknown
// identifiers emit nothing.
func (b *Backend) Press(key string) {
	b.inject(key, scancode.Press)
}

// Release simulates the matching button release.
func (b *Backend) Release(key string) {
	b.inject(key, scancode.Release)
}

func (b *Backend) inject(key string, dir scancode.Direction) {
	if !b.enabled.Load() {
		return
	}
	code, ok := keyTable[strings.ToLower(key)]
	if !ok {
		return
	}
	b.sink(scancode.Event{Code: code, Dir: dir})
	b.logger.Debug("fallback event", "key", key, "code", code.String(), "dir", dir.String())
}
