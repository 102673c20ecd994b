package slide

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	var s scheduler
	fired := 0
	s.after(300*time.Millisecond, func() { fired++ })

	s.advance(0.1)
	s.advance(0.1)
	if fired != 0 {
		t.Fatal("fired early")
	}
	s.advance(0.1)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	s.advance(1)
	if fired != 1 {
		t.Errorf("fired again: %d", fired)
	}
	if s.len() != 0 {
		t.Errorf("len = %d, want 0", s.len())
	}
}

func TestSchedulerOrder(t *testing.T) {
	var s scheduler
	var order []int
	s.after(200*time.Millisecond, func() { order = append(order, 2) })
	s.after(100*time.Millisecond, func() { order = append(order, 1) })
	s.after(500*time.Millisecond, func() { order = append(order, 3) })

	s.advance(0.25)
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("order = %v, want [2 1] (scheduling order)", order)
	}
	if s.len() != 1 {
		t.Errorf("len = %d, want 1", s.len())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s scheduler
	fired := false
	h := s.after(100*time.Millisecond, func() { fired = true })
	h.Cancel()
	h.Cancel()
	s.advance(1)
	if fired {
		t.Error("cancelled call fired")
	}

	var zero TimerHandle
	zero.Cancel() // must not panic
}

func TestSchedulerCancelAll(t *testing.T) {
	var s scheduler
	fired := 0
	for i := 0; i < 3; i++ {
		s.after(time.Millisecond, func() { fired++ })
	}
	s.cancelAll()
	s.advance(1)
	if fired != 0 || s.len() != 0 {
		t.Errorf("fired = %d, len = %d", fired, s.len())
	}
}

func TestSchedulerRescheduleFromCallback(t *testing.T) {
	var s scheduler
	fired := 0
	s.after(0, func() {
		fired++
		s.after(0, func() { fired++ })
	})
	s.advance(0)
	if fired != 1 {
		t.Fatalf("fired = %d after first advance, want 1", fired)
	}
	s.advance(0)
	if fired != 2 {
		t.Errorf("fired = %d after second advance, want 2", fired)
	}
}
