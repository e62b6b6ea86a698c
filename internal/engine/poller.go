// Package engine is the device polling and event-synthesis core: a
// fixed-rate sampling loop drives, per device and per tick, a classifier
// that detects discrete transitions and a synthesizer that turns them into
// canonical key events.
package engine

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/soar/padkeys/internal/device"
	"github.com/soar/padkeys/internal/scancode"
)

const (
	// DefaultInterval is the sampling cadence, ~60Hz.
	DefaultInterval = 16 * time.Millisecond

	// stopTimeout bounds how long Stop waits for the worker to settle.
	stopTimeout = time.Second
)

// Poller owns the sampling cadence. It iterates the fixed device set built
// at startup once per tick in a stable order, feeding each sample through
// the classifier and synthesizer. Exactly one worker goroutine runs at a
// time; all state mutation is confined to it.
type Poller struct {
	logger     *slog.Logger
	devices    []device.Device
	states     *stateTable
	classifier classifier
	interval   time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewPoller builds a Poller over the devices that passed the capability
// gate. The sink receives synthesized events from the polling worker.
func NewPoller(logger *slog.Logger, devices []device.Device, sink scancode.Sink, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		logger:     logger,
		devices:    devices,
		states:     newStateTable(len(devices)),
		classifier: classifier{synth: NewSynthesizer(sink)},
		interval:   interval,
	}
}

// Start spawns the polling worker. It is a no-op when already running, and
// when no device passed the capability gate the engine stays permanently in
// no-hardware mode for the session.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}
	if len(p.devices) == 0 {
		p.logger.Warn("no gamepads available, polling disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	go p.run(ctx, p.done)

	p.logger.Info("gamepad polling started", "devices", len(p.devices), "interval", p.interval)
}

// Stop signals cancellation and waits a bounded time for the worker to
// observe it. The worker reference is dropped regardless of the join
// outcome; Stop never blocks indefinitely.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}
	p.cancel()

	select {
	case <-p.done:
	case <-time.After(stopTimeout):
		p.logger.Warn("polling worker did not settle before timeout, abandoning")
	}

	p.cancel = nil
	p.done = nil
	p.running = false
	p.logger.Info("gamepad polling stopped")
}

// HasDevices reports whether any real device passed the capability gate.
func (p *Poller) HasDevices() bool {
	return len(p.devices) > 0
}

// DeviceCount returns the size of the fixed device set. Safe to call
// concurrently with the polling worker.
func (p *Poller) DeviceCount() int {
	return len(p.devices)
}

// NativeAvailable reports whether the native device path is usable.
func (p *Poller) NativeAvailable() bool {
	return len(p.devices) > 0
}

// Snapshot copies the tracked state of every device for diagnostics. One
// tick of staleness is acceptable; a single device is never torn.
func (p *Poller) Snapshot() []ControllerState {
	return p.states.snapshot()
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	// The native device layer expects its calls from a single OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

// tick samples every device once. A failure on one device is logged and
// skipped; it never aborts the tick for the others.
func (p *Poller) tick() {
	for idx, dev := range p.devices {
		samples, err := dev.Sample()
		if err != nil {
			p.logger.Warn("device sample failed", "device", idx, "error", err)
			continue
		}
		state := p.states.load(idx)
		p.classifier.process(idx, &state, samples)
		p.states.store(idx, state)
	}
}
