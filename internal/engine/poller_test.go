package engine

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/soar/padkeys/internal/device"
	"github.com/soar/padkeys/internal/scancode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeDevice scripts Sample results for the polling worker.
type fakeDevice struct {
	mu      sync.Mutex
	samples []device.Component
	err     error
	calls   int
}

func (d *fakeDevice) Class() (string, error) { return device.GamepadClass, nil }
func (d *fakeDevice) Name() (string, error)  { return "fake pad", nil }

func (d *fakeDevice) Sample() ([]device.Component, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	out := make([]device.Component, len(d.samples))
	copy(out, d.samples)
	return out, nil
}

func (d *fakeDevice) set(samples ...device.Component) {
	d.mu.Lock()
	d.samples = samples
	d.mu.Unlock()
}

func (d *fakeDevice) sampleCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// eventRecorder collects events emitted by the polling worker.
type eventRecorder struct {
	mu     sync.Mutex
	events []scancode.Event
}

func (r *eventRecorder) sink(ev scancode.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *eventRecorder) snapshot() []scancode.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]scancode.Event, len(r.events))
	copy(out, r.events)
	return out
}

func TestPollerWithoutDevices(t *testing.T) {
	rec := &eventRecorder{}
	p := NewPoller(discardLogger(), nil, rec.sink, time.Millisecond)

	assert.False(t, p.HasDevices())
	assert.False(t, p.NativeAvailable())
	assert.Equal(t, 0, p.DeviceCount())

	// Start with zero devices never spawns a worker; Stop is a no-op.
	p.Start()
	p.Stop()
	p.Stop()
	assert.Empty(t, rec.snapshot())
}

func TestPollerStartIsIdempotent(t *testing.T) {
	dev := &fakeDevice{}
	rec := &eventRecorder{}
	p := NewPoller(discardLogger(), []device.Device{dev}, rec.sink, time.Millisecond)

	p.Start()
	p.Start()
	require.True(t, p.HasDevices())
	assert.Equal(t, 1, p.DeviceCount())

	require.Eventually(t, func() bool { return dev.sampleCalls() > 3 },
		time.Second, time.Millisecond)

	p.Stop()
	settled := dev.sampleCalls()
	time.Sleep(20 * time.Millisecond)
	// At most one extra tick may run after a stop request.
	assert.LessOrEqual(t, dev.sampleCalls(), settled+1)

	p.Stop()
}

func TestPollerEmitsButtonEvents(t *testing.T) {
	dev := &fakeDevice{}
	dev.set(device.Component{ID: "button 1", Value: 0})
	rec := &eventRecorder{}
	p := NewPoller(discardLogger(), []device.Device{dev}, rec.sink, time.Millisecond)

	p.Start()
	defer p.Stop()

	require.Eventually(t, func() bool { return dev.sampleCalls() > 1 },
		time.Second, time.Millisecond)

	dev.set(device.Component{ID: "button 1", Value: 1})
	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 1 },
		time.Second, time.Millisecond)
	assert.Equal(t, press(scancode.Escape), rec.snapshot()[0])

	dev.set(device.Component{ID: "button 1", Value: 0})
	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 },
		time.Second, time.Millisecond)
	assert.Equal(t, release(scancode.Escape), rec.snapshot()[1])
}

func TestPollerIsolatesDeviceFailures(t *testing.T) {
	broken := &fakeDevice{err: errors.New("bus gone")}
	working := &fakeDevice{}
	working.set(device.Component{ID: "A", Value: 1})

	rec := &eventRecorder{}
	p := NewPoller(discardLogger(), []device.Device{broken, working}, rec.sink, time.Millisecond)

	p.Start()
	defer p.Stop()

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 },
		time.Second, time.Millisecond)

	// The working device's press came through despite the broken sibling.
	assert.Equal(t, []scancode.Event{press(scancode.Enter), press(scancode.Key1)},
		rec.snapshot()[:2])

	// The broken device's tracked state stays at its zero value.
	states := p.Snapshot()
	require.Len(t, states, 2)
	assert.Equal(t, ControllerState{}, states[0])
	assert.True(t, states[1].Buttons[ButtonA])
}
