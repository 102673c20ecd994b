package slide

import (
	"testing"
	"time"
)

func TestSignalDeliveryOrder(t *testing.T) {
	w, h, _ := newTestWidget(DefaultConfig())
	var order []string
	w.OnAccepted = func(Signal) { order = append(order, "widget") }
	h.OnAccepted(func(Signal) { order = append(order, "host") })
	store := &storeRecorder{}
	h.SetSignalStore(store)
	h.OnAccepted(func(Signal) {
		if len(store.sigs) != 0 {
			t.Error("store received the signal before host handlers")
		}
	})

	w.ProgrammaticComplete()
	if len(order) != 2 || order[0] != "widget" || order[1] != "host" {
		t.Errorf("order = %v, want [widget host]", order)
	}
	if len(store.sigs) != 1 {
		t.Fatalf("store signals = %d, want 1", len(store.sigs))
	}
	sig := store.sigs[0]
	if sig.Type != SignalAccepted || sig.WidgetID != w.ID() || !sig.Timestamp.Equal(testTime) {
		t.Errorf("signal = %+v", sig)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	w, h, _ := newTestWidget(DefaultConfig())
	var accepted, reset int
	ha := h.OnAccepted(func(Signal) { accepted++ })
	hr := h.OnReset(func(Signal) { reset++ })

	w.ProgrammaticComplete()
	w.ProgrammaticReset()
	ha.Remove()
	hr.Remove()
	hr.Remove()
	w.ProgrammaticComplete()
	w.ProgrammaticReset()

	if accepted != 1 || reset != 1 {
		t.Errorf("accepted = %d reset = %d, want 1 and 1", accepted, reset)
	}
	var zero CallbackHandle
	zero.Remove() // must not panic
}

func TestCommitIdempotent(t *testing.T) {
	w, h, _ := newTestWidget(DefaultConfig())
	var log signalLog
	h.OnAccepted(log.record)

	w.ProgrammaticComplete()
	w.ProgrammaticComplete()
	drag(h, 0, 275, 280, 30)
	if got := log.count(SignalAccepted); got != 1 {
		t.Errorf("accepted = %d, want 1", got)
	}
}

func TestCommitDuringDrag(t *testing.T) {
	w, h, s := newTestWidget(DefaultConfig())
	var log signalLog
	h.OnAccepted(log.record)

	h.Feed(0, 30, 30, true)
	h.Feed(0, 80, 30, true)
	w.ProgrammaticComplete()
	if w.GestureState() != GestureIdle || !s.transitions {
		t.Errorf("state = %v transitions = %v", w.GestureState(), s.transitions)
	}
	h.Feed(0, 80, 30, false)
	if w.Offset() != 245 || log.count(SignalAccepted) != 1 {
		t.Errorf("offset = %v accepted = %d", w.Offset(), log.count(SignalAccepted))
	}
}

func TestSuccessReveal(t *testing.T) {
	w, h, s := newTestWidget(DefaultConfig())
	w.ProgrammaticComplete()
	if w.SuccessShown() || s.successShown {
		t.Fatal("success shown immediately")
	}
	h.Advance(0.2)
	if w.SuccessShown() {
		t.Fatal("success shown before the delay")
	}
	h.Advance(0.1)
	if !w.SuccessShown() || !s.successShown {
		t.Error("success not shown after the delay")
	}
}

func TestResetCancelsReveal(t *testing.T) {
	w, h, s := newTestWidget(DefaultConfig())
	w.ProgrammaticComplete()
	h.Advance(0.1)
	w.ProgrammaticReset()
	h.Advance(1)
	if w.SuccessShown() || s.successShown {
		t.Error("reveal fired after reset")
	}
}

func TestDetachCancelsReveal(t *testing.T) {
	w, h, s := newTestWidget(DefaultConfig())
	w.ProgrammaticComplete()
	w.Detach()
	w.Attach(h)
	h.Advance(1)
	if w.SuccessShown() || s.successShown {
		t.Error("reveal survived detach")
	}
	if !w.IsCompleted() {
		t.Error("detach dropped the completion state")
	}
}

func TestRevealSurvivesReconfigure(t *testing.T) {
	w, h, s := newTestWidget(DefaultConfig())
	w.ProgrammaticComplete()
	w.Reconfigure(Config{Text: "Other"})
	h.Advance(SuccessRevealDelay.Seconds())
	if !w.SuccessShown() || !s.successShown {
		t.Error("pending reveal lost on reconfigure")
	}
	w.Reconfigure(Config{Text: "Third"})
	if !s.successShown {
		t.Error("reconfigure hid the success message")
	}
}

func TestResetAlwaysEmits(t *testing.T) {
	w, h, _ := newTestWidget(DefaultConfig())
	var log signalLog
	h.OnReset(log.record)
	w.ProgrammaticReset()
	w.ProgrammaticReset()
	if got := log.count(SignalReset); got != 2 {
		t.Errorf("reset signals = %d, want 2", got)
	}
}

func TestResetButtonClick(t *testing.T) {
	w, h, _ := newTestWidget(DefaultConfig())
	var log signalLog
	w.OnReset = log.record

	// The button is inert until completed.
	h.Feed(0, 150, 108, true)
	h.Feed(0, 150, 108, false)
	if len(log.sigs) != 0 {
		t.Fatal("reset button clickable while idle")
	}

	w.ProgrammaticComplete()
	h.Feed(0, 150, 108, true)
	h.Feed(0, 150, 108, false)
	if w.IsCompleted() || log.count(SignalReset) != 1 {
		t.Errorf("completed = %v resets = %d", w.IsCompleted(), log.count(SignalReset))
	}
}

func TestRoundTripMatchesFreshWidget(t *testing.T) {
	fresh, _, freshSurface := newTestWidget(DefaultConfig())
	w, h, s := newTestWidget(DefaultConfig())
	var log signalLog
	h.OnReset(log.record)

	w.ProgrammaticComplete()
	h.Advance(1)
	w.ProgrammaticReset()

	if log.count(SignalReset) != 1 {
		t.Errorf("reset signals = %d, want 1", log.count(SignalReset))
	}
	if w.IsCompleted() != fresh.IsCompleted() ||
		w.Offset() != fresh.Offset() ||
		w.SuccessShown() != fresh.SuccessShown() ||
		w.GestureState() != fresh.GestureState() {
		t.Errorf("widget state differs from a fresh widget")
	}
	if s.offset != freshSurface.offset || s.fill != freshSurface.fill ||
		s.completed != freshSurface.completed || s.successShown != freshSurface.successShown ||
		s.transitions != freshSurface.transitions {
		t.Errorf("surface %+v differs from fresh %+v", s, freshSurface)
	}
}

func TestSignalWithoutHost(t *testing.T) {
	w := NewWidget(DefaultConfig(), nil)
	var got Signal
	w.OnAccepted = func(sig Signal) { got = sig }
	before := time.Now()
	w.ProgrammaticComplete()
	if got.Type != SignalAccepted || got.Timestamp.Before(before) {
		t.Errorf("signal = %+v", got)
	}
}
