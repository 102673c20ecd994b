package slide

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// InputKind identifies the physical source of a pointer event. Values can be
// combined with bitwise OR to register one listener for several sources.
type InputKind uint8

const (
	InputMouse InputKind = 1 << iota // single pointer, pointer ID 0
	InputTouch                       // touch points, pointer IDs 1-9

	InputAny = InputMouse | InputTouch
)

// String returns a short name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputMouse:
		return "mouse"
	case InputTouch:
		return "touch"
	case InputAny:
		return "any"
	default:
		return "none"
	}
}

// Phase identifies which part of a pointer interaction a listener observes.
type Phase uint8

const (
	PhaseStart Phase = iota // pointer pressed (mousedown / touchstart)
	PhaseMove               // pointer moved (mousemove / touchmove)
	PhaseEnd                // pointer released (mouseup / touchend)
	PhaseClick              // pressed and released inside the same target
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseClick:
		return "click"
	default:
		return "unknown"
	}
}

// GestureState is the state of a widget's drag gesture.
type GestureState uint8

const (
	GestureIdle       GestureState = iota // no drag in progress
	GestureDragging                       // pointer held, offset tracking the pointer
	GestureCommitting                     // released at or past the threshold
	GestureReverting                      // released short of the threshold
)

// String returns a short name for the gesture state.
func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GestureCommitting:
		return "committing"
	case GestureReverting:
		return "reverting"
	default:
		return "unknown"
	}
}

// CompletionState is the persistent state of a widget between gestures.
type CompletionState uint8

const (
	StateIdle      CompletionState = iota // waiting for a drag
	StateCompleted                        // accepted; new drags are ignored until reset
)

// SignalType identifies a lifecycle signal emitted by a widget.
type SignalType uint8

const (
	SignalAccepted SignalType = iota // the slider was completed
	SignalReset                      // the slider was reset
)

// String returns the signal name as observed by listeners.
func (t SignalType) String() string {
	switch t {
	case SignalAccepted:
		return "accepted"
	case SignalReset:
		return "reset"
	default:
		return "unknown"
	}
}
