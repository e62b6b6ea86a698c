package engine

import (
	"testing"

	"github.com/soar/padkeys/internal/scancode"
	"github.com/stretchr/testify/assert"
)

type capture struct {
	events []scancode.Event
}

func (c *capture) sink(ev scancode.Event) {
	c.events = append(c.events, ev)
}

func (c *capture) reset() {
	c.events = nil
}

func newTestSynth() (*Synthesizer, *capture) {
	c := &capture{}
	return NewSynthesizer(c.sink), c
}

func press(code scancode.Code) scancode.Event {
	return scancode.Event{Code: code, Dir: scancode.Press}
}

func release(code scancode.Code) scancode.Event {
	return scancode.Event{Code: code, Dir: scancode.Release}
}

func TestNeutralZoneIsIdempotent(t *testing.T) {
	s, c := newTestSynth()

	for _, pair := range [][2]float32{
		{0, 0}, {0, 0.2}, {0.2, -0.2}, {-0.3, 0.3}, {0.3, 0.1},
	} {
		s.axisChange(0, AxisLeftX, pair[0], pair[1])
		s.axisChange(0, AxisLeftY, pair[0], pair[1])
	}
	assert.Empty(t, c.events)
}

func TestAxisThresholdCrossing(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		old  float32
		new  float32
		want []scancode.Event
	}{
		{"right press", AxisLeftX, 0.2, 0.4, []scancode.Event{press(scancode.Right)}},
		{"right release", AxisLeftX, 0.4, 0.2, []scancode.Event{release(scancode.Right)}},
		{"left press", AxisLeftX, -0.2, -0.4, []scancode.Event{press(scancode.Left)}},
		{"left release", AxisLeftX, -0.4, -0.2, []scancode.Event{release(scancode.Left)}},
		{"up press", AxisLeftY, 0, -0.8, []scancode.Event{press(scancode.Up)}},
		{"down press", AxisLeftY, 0, 0.8, []scancode.Event{press(scancode.Down)}},
		{"left to right swing", AxisLeftX, -0.5, 0.5, []scancode.Event{release(scancode.Left), press(scancode.Right)}},
		{"right stick ignored", AxisRightX, 0, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := newTestSynth()
			s.axisChange(0, tt.axis, tt.old, tt.new)
			assert.Equal(t, tt.want, c.events)
		})
	}
}

func TestAxisRepeatCadence(t *testing.T) {
	s, c := newTestSynth()

	s.axisChange(0, AxisLeftX, 0, 0.9)
	assert.Equal(t, []scancode.Event{press(scancode.Right)}, c.events)
	c.reset()

	// Holding for repeatDelay further ticks fires the second press on the
	// last of them, with no intervening release.
	for i := 0; i < repeatDelay; i++ {
		s.axisChange(0, AxisLeftX, 0.9, 0.9)
	}
	assert.Equal(t, []scancode.Event{press(scancode.Right)}, c.events)
	c.reset()

	// After the first repeat, subsequent repeats fire every 2 ticks.
	for i := 0; i < 6; i++ {
		s.axisChange(0, AxisLeftX, 0.9, 0.9)
	}
	assert.Equal(t, []scancode.Event{
		press(scancode.Right), press(scancode.Right), press(scancode.Right),
	}, c.events)
	c.reset()

	s.axisChange(0, AxisLeftX, 0.9, 0)
	assert.Equal(t, []scancode.Event{release(scancode.Right)}, c.events)
}

func TestRepeatCountersAreIndependent(t *testing.T) {
	s, c := newTestSynth()

	// Hold right on device 0 until one tick before its repeat would fire.
	s.axisChange(0, AxisLeftX, 0, 0.9)
	for i := 0; i < repeatDelay-1; i++ {
		s.axisChange(0, AxisLeftX, 0.9, 0.9)
	}
	c.reset()

	// A fresh press of down on device 1, held the same way, must not
	// inherit device 0's counter and fire an early repeat.
	s.axisChange(1, AxisLeftY, 0, 0.9)
	for i := 0; i < repeatDelay-1; i++ {
		s.axisChange(1, AxisLeftY, 0.9, 0.9)
	}
	assert.Equal(t, []scancode.Event{press(scancode.Down)}, c.events)
	c.reset()

	// Device 0's own repeat still fires on its 10th held tick.
	s.axisChange(0, AxisLeftX, 0.9, 0.9)
	assert.Equal(t, []scancode.Event{press(scancode.Right)}, c.events)
}

func TestTriggerFiresWithoutRepeat(t *testing.T) {
	for _, axis := range []Axis{AxisLeftTrigger, AxisRightTrigger} {
		s, c := newTestSynth()

		s.axisChange(0, axis, 0, 0.9)
		assert.Equal(t, []scancode.Event{press(scancode.Space)}, c.events)
		c.reset()

		for i := 0; i < repeatDelay*2; i++ {
			s.axisChange(0, axis, 0.9, 0.9)
		}
		assert.Empty(t, c.events, "triggers must not repeat")

		s.axisChange(0, axis, 0.9, 0)
		assert.Equal(t, []scancode.Event{release(scancode.Space)}, c.events)
	}
}

func TestConfirmButtonEmitsTwoCodes(t *testing.T) {
	s, c := newTestSynth()

	s.buttonEdge(ButtonA, true)
	assert.Equal(t, []scancode.Event{press(scancode.Enter), press(scancode.Key1)}, c.events)
	c.reset()

	s.buttonEdge(ButtonA, false)
	assert.Equal(t, []scancode.Event{release(scancode.Enter), release(scancode.Key1)}, c.events)
}

func TestButtonScanCodes(t *testing.T) {
	tests := []struct {
		btn  Button
		code scancode.Code
	}{
		{ButtonB, scancode.Escape},
		{ButtonX, scancode.Space},
		{ButtonY, scancode.Key1},
		{ButtonLB, scancode.Comma},
		{ButtonRB, scancode.Period},
		{ButtonBack, scancode.Escape},
		{ButtonStart, scancode.Pause},
		{ButtonLS, scancode.LeftShift},
		{ButtonRS, scancode.LeftShift},
	}
	for _, tt := range tests {
		s, c := newTestSynth()
		s.buttonEdge(tt.btn, true)
		s.buttonEdge(tt.btn, false)
		assert.Equal(t, []scancode.Event{press(tt.code), release(tt.code)}, c.events)
	}
}

func TestPovSequence(t *testing.T) {
	s, c := newTestSynth()

	// [0.0, 0.25, 0.25, 0.0]: press at the second sample, nothing on the
	// unchanged third, release at the fourth.
	values := []float32{0.0, 0.25, 0.25, 0.0}
	var last float32
	var perSample [][]scancode.Event
	for _, v := range values {
		c.reset()
		s.povChange(last, v)
		perSample = append(perSample, c.events)
		last = v
	}

	assert.Empty(t, perSample[0])
	assert.Equal(t, []scancode.Event{press(scancode.Up)}, perSample[1])
	assert.Empty(t, perSample[2])
	assert.Equal(t, []scancode.Event{release(scancode.Up)}, perSample[3])
}

func TestPovQuadrantSwitch(t *testing.T) {
	s, c := newTestSynth()

	// Up straight to right: release before press.
	s.povChange(0.25, 0.5)
	assert.Equal(t, []scancode.Event{release(scancode.Up), press(scancode.Right)}, c.events)
}

func TestQuadrantDecoding(t *testing.T) {
	tests := []struct {
		value float32
		want  Quadrant
	}{
		{0, Centered},
		{0.25, QuadrantUp},
		{0.5, QuadrantRight},
		{0.75, QuadrantDown},
		{1.0, QuadrantLeft},
		{0.125, Centered}, // diagonal reads as centered
		{0.875, Centered},
		{0.3, Centered},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quadrantOf(tt.value), "pov %v", tt.value)
	}
}
