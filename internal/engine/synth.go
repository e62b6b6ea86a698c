package engine

import "github.com/soar/padkeys/internal/scancode"

const (
	// analogThreshold separates the neutral zone from a held direction.
	// The comparison is strict and symmetric: |value| <= threshold is
	// released for both directions.
	analogThreshold = 0.3

	// repeatDelay is the number of consecutive held ticks before a
	// direction re-fires for menu navigation (~166ms at the 16ms cadence).
	// After firing, the counter drops to repeatDelay-2 so further repeats
	// come every 2 ticks.
	repeatDelay = 10
)

// Quadrant is the discrete directional-pad position.
type Quadrant int

const (
	Centered Quadrant = iota
	QuadrantUp
	QuadrantRight
	QuadrantDown
	QuadrantLeft
)

// The pad reports one continuous value per tick that, when a direction is
// held, matches one of four canonical fractions exactly. Anything else,
// diagonals included, reads as centered.
func quadrantOf(pov float32) Quadrant {
	switch pov {
	case 0.25:
		return QuadrantUp
	case 0.5:
		return QuadrantRight
	case 0.75:
		return QuadrantDown
	case 1.0:
		return QuadrantLeft
	default:
		return Centered
	}
}

var quadrantCodes = map[Quadrant]scancode.Code{
	QuadrantUp:    scancode.Up,
	QuadrantRight: scancode.Right,
	QuadrantDown:  scancode.Down,
	QuadrantLeft:  scancode.Left,
}

// repeatKey identifies one held direction on one device. Keeping a counter
// per pair lets two held directions, or two devices, repeat independently.
type repeatKey struct {
	device int
	code   scancode.Code
}

// Synthesizer turns detected transitions into canonical key events.
type Synthesizer struct {
	sink    scancode.Sink
	repeats map[repeatKey]int
}

// NewSynthesizer creates a Synthesizer emitting into sink.
func NewSynthesizer(sink scancode.Sink) *Synthesizer {
	return &Synthesizer{
		sink:    sink,
		repeats: make(map[repeatKey]int),
	}
}

func (s *Synthesizer) emit(code scancode.Code, dir scancode.Direction) {
	s.sink(scancode.Event{Code: code, Dir: dir})
}

// buttonEdge emits the events for a digital button flip. The confirm button
// sends both Enter (menu confirmation) and the weapon-slot-1 key (quit
// confirmation screen) together on each edge.
func (s *Synthesizer) buttonEdge(btn Button, pressed bool) {
	dir := scancode.Release
	if pressed {
		dir = scancode.Press
	}
	if btn == ButtonA {
		s.emit(scancode.Enter, dir)
		s.emit(scancode.Key1, dir)
		return
	}
	code, ok := buttonCodes[btn]
	if !ok {
		return
	}
	s.emit(code, dir)
}

// axisChange emits the events for an analog value moving between samples.
// LeftX and LeftY are directional with key-repeat; the triggers fire a
// single key without repeat. Other axes are tracked but emit nothing.
func (s *Synthesizer) axisChange(device int, axis Axis, old, value float32) {
	switch axis {
	case AxisLeftX:
		s.direction(device, scancode.Left, old < -analogThreshold, value < -analogThreshold)
		s.direction(device, scancode.Right, old > analogThreshold, value > analogThreshold)
	case AxisLeftY:
		s.direction(device, scancode.Up, old < -analogThreshold, value < -analogThreshold)
		s.direction(device, scancode.Down, old > analogThreshold, value > analogThreshold)
	case AxisLeftTrigger, AxisRightTrigger:
		was := old > analogThreshold
		is := value > analogThreshold
		if is && !was {
			s.emit(scancode.Space, scancode.Press)
		} else if !is && was {
			s.emit(scancode.Space, scancode.Release)
		}
	}
}

func (s *Synthesizer) direction(device int, code scancode.Code, was, held bool) {
	key := repeatKey{device: device, code: code}
	switch {
	case held && !was:
		s.emit(code, scancode.Press)
		s.repeats[key] = 0
	case !held && was:
		s.emit(code, scancode.Release)
		delete(s.repeats, key)
	case held && was:
		n := s.repeats[key] + 1
		if n >= repeatDelay {
			s.emit(code, scancode.Press)
			n = repeatDelay - 2
		}
		s.repeats[key] = n
	}
}

// povChange diffs the previous and current pad quadrant: the direction no
// longer active releases before the newly active direction presses.
func (s *Synthesizer) povChange(old, value float32) {
	from := quadrantOf(old)
	to := quadrantOf(value)
	if from == to {
		return
	}
	if from != Centered {
		s.emit(quadrantCodes[from], scancode.Release)
	}
	if to != Centered {
		s.emit(quadrantCodes[to], scancode.Press)
	}
}
