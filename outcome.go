package slide

import "time"

// SuccessRevealDelay is how long after completion the success message
// appears, giving the handle time to settle at the end of the track.
const SuccessRevealDelay = 300 * time.Millisecond

// Signal is emitted when a widget completes or resets.
type Signal struct {
	Type      SignalType
	WidgetID  uint32
	Timestamp time.Time
}

// --- Host-level signal handlers ---

type signalHandler struct {
	id uint32
	fn func(Signal)
}

type signalRegistry struct {
	accepted []signalHandler
	reset    []signalHandler
	nextID   uint32
}

// CallbackHandle allows removing a host-level signal handler.
type CallbackHandle struct {
	id    uint32
	reg   *signalRegistry
	event SignalType
}

// Remove unregisters the handler so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case SignalAccepted:
		h.reg.accepted = removeSignalHandler(h.reg.accepted, h.id)
	case SignalReset:
		h.reg.reset = removeSignalHandler(h.reg.reset, h.id)
	}
}

func removeSignalHandler(s []signalHandler, id uint32) []signalHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = signalHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnAccepted registers a host-level handler for accepted signals from any
// attached widget.
func (h *Host) OnAccepted(fn func(Signal)) CallbackHandle {
	h.signals.nextID++
	id := h.signals.nextID
	h.signals.accepted = append(h.signals.accepted, signalHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &h.signals, event: SignalAccepted}
}

// OnReset registers a host-level handler for reset signals from any
// attached widget.
func (h *Host) OnReset(fn func(Signal)) CallbackHandle {
	h.signals.nextID++
	id := h.signals.nextID
	h.signals.reset = append(h.signals.reset, signalHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &h.signals, event: SignalReset}
}

// fireSignal delivers a signal to host handlers and the ECS bridge.
func (h *Host) fireSignal(sig Signal) {
	handlers := h.signals.accepted
	if sig.Type == SignalReset {
		handlers = h.signals.reset
	}
	for _, hd := range handlers {
		hd.fn(sig)
	}
	if h.store != nil {
		h.store.EmitSignal(sig)
	}
	if h.debug {
		h.logf("widget %d: %s at %s", sig.WidgetID, sig.Type, sig.Timestamp.Format(time.RFC3339Nano))
	}
}

// --- Outcome controller ---

// commit completes the widget. Completing an already completed widget does
// nothing, so each completion emits exactly one accepted signal.
func (w *Widget) commit() {
	if w.state == StateCompleted {
		return
	}
	if w.session.Active() {
		w.session.Cancel()
		w.surface.SetTransitions(true)
	}
	w.snap = w.measure()
	w.state = StateCompleted
	w.offset = w.snap.MaxDistance
	w.surface.SetCompleted(true)
	w.applyOffset()

	w.reveal.Cancel()
	w.reveal = w.timers.after(SuccessRevealDelay, func() {
		w.successShown = true
		w.surface.SetSuccessShown(true)
	})

	w.emit(SignalAccepted)
}

// revert springs the handle back after a short drag. No signal is emitted.
func (w *Widget) revert() {
	w.offset = 0
	w.applyOffset()
}

// reset returns the widget to its initial state from any state and emits a
// reset signal. It is the only way out of StateCompleted.
func (w *Widget) reset() {
	if w.session.Active() {
		w.session.Cancel()
		w.surface.SetTransitions(true)
	}
	w.reveal.Cancel()
	w.reveal = TimerHandle{}
	w.state = StateIdle
	w.successShown = false
	w.surface.SetCompleted(false)
	w.surface.SetSuccessShown(false)
	w.offset = 0
	w.applyOffset()

	w.emit(SignalReset)
}

// emit bubbles a signal from the widget to its host.
func (w *Widget) emit(t SignalType) {
	sig := Signal{Type: t, WidgetID: w.id}
	if w.host != nil {
		sig.Timestamp = w.host.now()
	} else {
		sig.Timestamp = time.Now()
	}
	switch t {
	case SignalAccepted:
		if w.OnAccepted != nil {
			w.OnAccepted(sig)
		}
	case SignalReset:
		if w.OnReset != nil {
			w.OnReset(sig)
		}
	}
	if w.host != nil {
		w.host.fireSignal(sig)
	}
}

// IsCompleted reports whether the widget is in StateCompleted.
func (w *Widget) IsCompleted() bool {
	return w.state == StateCompleted
}

// ProgrammaticComplete completes the widget without a gesture. It is a no-op
// when the widget is already completed.
func (w *Widget) ProgrammaticComplete() {
	w.commit()
}

// ProgrammaticReset resets the widget without a gesture.
func (w *Widget) ProgrammaticReset() {
	w.reset()
}
