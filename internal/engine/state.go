package engine

import "sync"

const (
	buttonSlots = 20
	axisSlots   = 10
)

// ControllerState is the last-observed sample set for one device. Slot
// indexes are the canonical Button/Axis values and stay stable for the
// process lifetime; unmapped identifiers never consume a slot.
type ControllerState struct {
	Buttons [buttonSlots]bool
	Axes    [axisSlots]float32
	Pov     float32
}

// stateTable is a fixed arena of per-device state, keyed by the stable
// device index assigned at enumeration. Only the polling worker writes;
// whole-device copies in and out keep concurrent readers from observing a
// half-updated device.
type stateTable struct {
	mu     sync.RWMutex
	states []ControllerState
}

func newStateTable(n int) *stateTable {
	return &stateTable{states: make([]ControllerState, n)}
}

func (t *stateTable) load(idx int) ControllerState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.states[idx]
}

func (t *stateTable) store(idx int, s ControllerState) {
	t.mu.Lock()
	t.states[idx] = s
	t.mu.Unlock()
}

// snapshot copies the whole table for diagnostics readers.
func (t *stateTable) snapshot() []ControllerState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]ControllerState, len(t.states))
	copy(out, t.states)
	return out
}
