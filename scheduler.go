package slide

import "time"

// deferredCall is one pending callback in a scheduler.
type deferredCall struct {
	id        uint32
	remaining float64 // seconds
	fn        func()
}

// scheduler runs callbacks after a delay measured in frame time. It is
// advanced by the owning widget, so nothing fires once the widget is
// detached and every pending call can be cancelled.
type scheduler struct {
	pending []deferredCall
	nextID  uint32
	firing  []deferredCall
}

// TimerHandle cancels a callback scheduled on a widget.
type TimerHandle struct {
	id    uint32
	sched *scheduler
}

// Cancel stops the callback from firing. Safe to call more than once and
// after the callback has run.
func (h TimerHandle) Cancel() {
	if h.sched == nil {
		return
	}
	h.sched.cancel(h.id)
}

func (s *scheduler) after(d time.Duration, fn func()) TimerHandle {
	s.nextID++
	s.pending = append(s.pending, deferredCall{id: s.nextID, remaining: d.Seconds(), fn: fn})
	return TimerHandle{id: s.nextID, sched: s}
}

func (s *scheduler) cancel(id uint32) {
	for i := range s.pending {
		if s.pending[i].id == id {
			copy(s.pending[i:], s.pending[i+1:])
			s.pending[len(s.pending)-1] = deferredCall{}
			s.pending = s.pending[:len(s.pending)-1]
			return
		}
	}
}

func (s *scheduler) cancelAll() {
	for i := range s.pending {
		s.pending[i] = deferredCall{}
	}
	s.pending = s.pending[:0]
}

// advance moves time forward by dt seconds and runs every call whose delay
// has elapsed, in scheduling order. Calls scheduled from inside a callback
// wait for the next advance.
func (s *scheduler) advance(dt float64) {
	if len(s.pending) == 0 {
		return
	}
	s.firing = s.firing[:0]
	kept := s.pending[:0]
	for _, c := range s.pending {
		c.remaining -= dt
		if c.remaining <= 0 {
			s.firing = append(s.firing, c)
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = deferredCall{}
	}
	s.pending = kept
	for i := range s.firing {
		s.firing[i].fn()
		s.firing[i] = deferredCall{}
	}
}

// len reports the number of pending calls.
func (s *scheduler) len() int { return len(s.pending) }
