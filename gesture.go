package slide

// Decision is the outcome of a released gesture.
type Decision uint8

const (
	DecisionNone   Decision = iota // no active gesture; nothing to do
	DecisionCommit                 // offset reached the threshold
	DecisionRevert                 // offset fell short; spring back
)

// Session tracks one drag from press to release. It only sees normalized
// PointerInput, so it behaves the same for mouse and touch. The zero value
// is an idle session.
//
// Move and End on an inactive session are no-ops, which makes stray or
// duplicated events harmless.
type Session struct {
	snap   Snapshot
	anchor float64
	offset float64
	active bool
	state  GestureState
}

// Start begins a drag anchored at the input coordinate using a freshly
// computed snapshot. It returns false, leaving the session untouched, when
// the input carries no coordinate.
func (s *Session) Start(in PointerInput, snap Snapshot) bool {
	if !in.Resolved {
		return false
	}
	s.snap = snap
	s.anchor = in.X
	s.offset = 0
	s.active = true
	s.state = GestureDragging
	return true
}

// Move updates the offset from the input coordinate, clamped to
// [0, MaxDistance]. An unresolved coordinate leaves the offset unchanged.
// The second result is false when no drag is active.
func (s *Session) Move(in PointerInput) (float64, bool) {
	if !s.active {
		return s.offset, false
	}
	if in.Resolved {
		s.offset = s.snap.Clamp(in.X - s.anchor)
	}
	return s.offset, true
}

// End finishes the drag and decides its outcome. Reaching the threshold
// exactly counts as success. The session stays in GestureCommitting or
// GestureReverting until Settle is called.
func (s *Session) End() Decision {
	if !s.active {
		return DecisionNone
	}
	s.active = false
	if s.offset >= s.snap.Threshold {
		s.state = GestureCommitting
		return DecisionCommit
	}
	s.state = GestureReverting
	return DecisionRevert
}

// Settle returns a finished session to GestureIdle.
func (s *Session) Settle() {
	if !s.active {
		s.state = GestureIdle
	}
}

// Cancel abandons an active drag without a decision.
func (s *Session) Cancel() {
	s.active = false
	s.offset = 0
	s.state = GestureIdle
}

// Active reports whether a drag is in progress.
func (s *Session) Active() bool { return s.active }

// State returns the current gesture state.
func (s *Session) State() GestureState { return s.state }

// Offset returns the last clamped offset.
func (s *Session) Offset() float64 { return s.offset }

// Snapshot returns the geometry captured at Start.
func (s *Session) Snapshot() Snapshot { return s.snap }
