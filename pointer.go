package slide

// RawEvent is an input event as delivered by an input source, before it is
// normalized. It is implemented by MouseEvent and TouchEvent only.
type RawEvent interface {
	kind() InputKind
}

// MouseEvent is a single-pointer event exposing its coordinate directly.
type MouseEvent struct {
	X, Y float64
}

func (MouseEvent) kind() InputKind { return InputMouse }

// TouchPoint is one finger on a touch surface.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchEvent is a multi-touch event. Touches lists the points still in
// contact; ChangedTouches lists the points this event is about. On release
// the lifted finger appears only in ChangedTouches.
type TouchEvent struct {
	Touches        []TouchPoint
	ChangedTouches []TouchPoint
}

func (TouchEvent) kind() InputKind { return InputTouch }

// PointerInput is the normalized form of a RawEvent consumed by Session.
// Resolved is false when no coordinate could be extracted (an empty touch
// list); consumers treat that as "no movement".
type PointerInput struct {
	Kind     InputKind
	X        float64
	Resolved bool
}

// ExtractCoordinate returns the horizontal coordinate of an event. For touch
// events the first active touch wins, then the first changed touch. It
// reports false, and never panics, when both lists are empty.
func ExtractCoordinate(ev RawEvent) (float64, bool) {
	switch e := ev.(type) {
	case MouseEvent:
		return e.X, true
	case *MouseEvent:
		if e == nil {
			return 0, false
		}
		return e.X, true
	case TouchEvent:
		return touchCoordinate(e.Touches, e.ChangedTouches)
	case *TouchEvent:
		if e == nil {
			return 0, false
		}
		return touchCoordinate(e.Touches, e.ChangedTouches)
	}
	return 0, false
}

func touchCoordinate(touches, changed []TouchPoint) (float64, bool) {
	if len(touches) > 0 {
		return touches[0].X, true
	}
	if len(changed) > 0 {
		return changed[0].X, true
	}
	return 0, false
}

// Normalize converts a raw event into the input-source-agnostic form.
func Normalize(ev RawEvent) PointerInput {
	switch e := ev.(type) {
	case MouseEvent:
		return normalizeMouse(e.X)
	case TouchEvent:
		return normalizeTouch(e.Touches, e.ChangedTouches)
	case *MouseEvent:
		if e != nil {
			return normalizeMouse(e.X)
		}
		return PointerInput{Kind: InputMouse}
	case *TouchEvent:
		if e != nil {
			return normalizeTouch(e.Touches, e.ChangedTouches)
		}
		return PointerInput{Kind: InputTouch}
	}
	return PointerInput{}
}

// normalizeMouse and normalizeTouch skip the interface conversion on the
// host's per-frame path.
func normalizeMouse(x float64) PointerInput {
	return PointerInput{Kind: InputMouse, X: x, Resolved: true}
}

func normalizeTouch(touches, changed []TouchPoint) PointerInput {
	x, ok := touchCoordinate(touches, changed)
	return PointerInput{Kind: InputTouch, X: x, Resolved: ok}
}
