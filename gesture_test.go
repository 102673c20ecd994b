package slide

import "testing"

func mouseAt(x float64) PointerInput { return Normalize(MouseEvent{X: x}) }

func TestSessionDecisions(t *testing.T) {
	snap := ComputeSnapshot(DefaultConfig(), 300) // max 245, threshold 196
	tests := []struct {
		name       string
		moves      []float64
		wantOffset float64
		want       Decision
		wantState  GestureState
	}{
		{"no movement reverts", nil, 0, DecisionRevert, GestureReverting},
		{"short drag reverts", []float64{150}, 120, DecisionRevert, GestureReverting},
		{"exact threshold commits", []float64{226}, 196, DecisionCommit, GestureCommitting},
		{"just below threshold reverts", []float64{225.5}, 195.5, DecisionRevert, GestureReverting},
		{"overshoot clamps and commits", []float64{500}, 245, DecisionCommit, GestureCommitting},
		{"backwards clamps to zero", []float64{0}, 0, DecisionRevert, GestureReverting},
		{"last move wins", []float64{280, 100}, 70, DecisionRevert, GestureReverting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session
			if !s.Start(mouseAt(30), snap) {
				t.Fatal("Start rejected a resolved input")
			}
			for _, x := range tt.moves {
				s.Move(mouseAt(x))
			}
			if s.Offset() != tt.wantOffset {
				t.Errorf("Offset = %v, want %v", s.Offset(), tt.wantOffset)
			}
			if d := s.End(); d != tt.want {
				t.Errorf("End = %v, want %v", d, tt.want)
			}
			if s.State() != tt.wantState {
				t.Errorf("State = %v, want %v", s.State(), tt.wantState)
			}
			s.Settle()
			if s.State() != GestureIdle || s.Active() {
				t.Errorf("after Settle: state %v active %v", s.State(), s.Active())
			}
		})
	}
}

func TestSessionUnresolvedInput(t *testing.T) {
	snap := ComputeSnapshot(DefaultConfig(), 300)
	var s Session
	if s.Start(Normalize(TouchEvent{}), snap) {
		t.Fatal("Start accepted an input without a coordinate")
	}
	if s.Active() || s.State() != GestureIdle {
		t.Fatal("rejected Start changed the session")
	}

	s.Start(mouseAt(30), snap)
	s.Move(mouseAt(130))
	off, ok := s.Move(Normalize(TouchEvent{}))
	if !ok || off != 100 {
		t.Errorf("Move(unresolved) = (%v, %v), want (100, true)", off, ok)
	}
}

func TestSessionInactiveIsNoOp(t *testing.T) {
	var s Session
	if _, ok := s.Move(mouseAt(100)); ok {
		t.Error("Move on idle session reported active")
	}
	if d := s.End(); d != DecisionNone {
		t.Errorf("End on idle session = %v, want DecisionNone", d)
	}

	s.Start(mouseAt(0), ComputeSnapshot(DefaultConfig(), 300))
	s.End()
	if d := s.End(); d != DecisionNone {
		t.Errorf("second End = %v, want DecisionNone", d)
	}
}

func TestSessionZeroTravel(t *testing.T) {
	// A track no longer than the handle: max and threshold are both 0, so
	// any release commits.
	snap := ComputeSnapshot(DefaultConfig(), 40)
	var s Session
	s.Start(mouseAt(10), snap)
	s.Move(mouseAt(90))
	if s.Offset() != 0 {
		t.Errorf("Offset = %v, want 0", s.Offset())
	}
	if d := s.End(); d != DecisionCommit {
		t.Errorf("End = %v, want DecisionCommit", d)
	}
}

func TestSessionCancel(t *testing.T) {
	var s Session
	s.Start(mouseAt(30), ComputeSnapshot(DefaultConfig(), 300))
	s.Move(mouseAt(200))
	s.Cancel()
	if s.Active() || s.Offset() != 0 || s.State() != GestureIdle {
		t.Errorf("after Cancel: active %v offset %v state %v", s.Active(), s.Offset(), s.State())
	}
}

func TestSessionSnapshotIsFrozen(t *testing.T) {
	var s Session
	first := ComputeSnapshot(DefaultConfig(), 300)
	s.Start(mouseAt(0), first)
	s.Move(mouseAt(1000))
	if s.Offset() != first.MaxDistance {
		t.Errorf("Offset = %v, want %v", s.Offset(), first.MaxDistance)
	}
	if s.Snapshot() != first {
		t.Errorf("Snapshot changed mid-drag")
	}
}
