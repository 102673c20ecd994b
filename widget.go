package slide

// widgetIDCounter is a plain counter (no atomic; a host is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// bindingsPerWidget is the number of listeners an attached widget holds:
// start, move and end for mouse and touch, plus the reset button click.
const bindingsPerWidget = 7

// Widget is a slide-to-accept control. It owns its gesture session, its
// completion state and its surface; the host only routes input to it.
//
// Dragging the handle past Config.Threshold of the travel and releasing it
// completes the widget and emits an accepted signal. A completed widget
// ignores drags until it is reset.
type Widget struct {
	// X and Y place the widget in host coordinates.
	X, Y float64

	// OnAccepted and OnReset run before host-level handlers.
	OnAccepted func(Signal)
	OnReset    func(Signal)

	id      uint32
	cfg     Config
	surface Surface
	host    *Host

	session      Session
	snap         Snapshot
	state        CompletionState
	offset       float64
	pointerID    int
	successShown bool

	timers   scheduler
	reveal   TimerHandle
	bindings []ListenerHandle
}

// NewWidget creates a detached widget. A nil surface runs the widget
// without visuals.
func NewWidget(cfg Config, surface Surface) *Widget {
	if surface == nil {
		surface = nopSurface{}
	}
	w := &Widget{
		id:       nextWidgetID(),
		cfg:      cfg.Normalize(),
		surface:  surface,
		bindings: make([]ListenerHandle, 0, bindingsPerWidget),
	}
	w.snap = w.measure()
	return w
}

// ID returns the widget's unique ID, carried by its signals.
func (w *Widget) ID() uint32 { return w.id }

// Config returns the normalized config of the current render cycle.
func (w *Widget) Config() Config { return w.cfg }

// Host returns the host the widget is attached to, or nil.
func (w *Widget) Host() *Host { return w.host }

// Surface returns the widget's surface.
func (w *Widget) Surface() Surface { return w.surface }

// Offset returns the handle offset from its resting position.
func (w *Widget) Offset() float64 { return w.offset }

// Snapshot returns the geometry computed at the last render, gesture start
// or completion.
func (w *Widget) Snapshot() Snapshot { return w.snap }

// GestureState returns the state of the drag gesture.
func (w *Widget) GestureState() GestureState { return w.session.State() }

// SuccessShown reports whether the success message has been revealed.
func (w *Widget) SuccessShown() bool { return w.successShown }

// Attach renders the widget and binds its listeners on h. Attaching to the
// same host again rebinds; attaching to another host detaches first.
func (w *Widget) Attach(h *Host) {
	if h == nil {
		w.Detach()
		return
	}
	if w.host != nil && w.host != h {
		w.Detach()
	}
	w.host = h
	h.addWidget(w)
	w.render()
	w.bind()
}

// Reconfigure replaces the config, re-renders and rebinds. An active drag
// is cancelled. The completion state is kept.
func (w *Widget) Reconfigure(cfg Config) {
	w.cfg = cfg.Normalize()
	if w.session.Active() {
		w.session.Cancel()
	}
	w.render()
	if w.host != nil {
		w.bind()
	}
}

// Detach unbinds every listener, cancels pending timers and removes the
// widget from its host. The widget keeps its state and can be attached
// again.
func (w *Widget) Detach() {
	w.unbind()
	w.timers.cancelAll()
	w.reveal = TimerHandle{}
	if w.session.Active() {
		w.session.Cancel()
		w.surface.SetTransitions(true)
	}
	if w.host != nil {
		w.host.logf("widget %d: detached", w.id)
		w.host.removeWidget(w)
		w.host = nil
	}
}

// render pushes the config to the surface and restores the visuals of the
// current completion state without animating.
func (w *Widget) render() {
	w.surface.Render(w.cfg)
	w.snap = w.measure()

	w.surface.SetTransitions(false)
	if w.state == StateCompleted {
		w.offset = w.snap.MaxDistance
	} else {
		w.offset = 0
	}
	w.surface.SetCompleted(w.state == StateCompleted)
	w.surface.SetSuccessShown(w.successShown)
	w.applyOffset()
	w.surface.SetTransitions(true)
}

// bind detaches any previous listeners and attaches a fresh set, so
// repeated reconfiguration never stacks handlers.
func (w *Widget) bind() {
	w.unbind()
	h := w.host
	passive := ListenerOptions{Passive: true}
	handle := handleArea{w}

	w.bindings = append(w.bindings,
		h.Listen(PhaseStart, InputMouse, handle, passive, w.onStart),
		h.Listen(PhaseStart, InputTouch, handle, passive, w.onStart),
		h.Listen(PhaseMove, InputMouse, nil, passive, w.onMove),
		h.Listen(PhaseMove, InputTouch, nil, ListenerOptions{}, w.onMove),
		h.Listen(PhaseEnd, InputMouse, nil, passive, w.onEnd),
		h.Listen(PhaseEnd, InputTouch, nil, passive, w.onEnd),
		h.Listen(PhaseClick, InputAny, resetArea{w}, passive, w.onResetClick),
	)
	h.logf("widget %d: bound %d listeners (host total %d)", w.id, len(w.bindings), h.ListenerCount())
}

func (w *Widget) unbind() {
	for i := range w.bindings {
		w.bindings[i].Remove()
		w.bindings[i] = ListenerHandle{}
	}
	w.bindings = w.bindings[:0]
}

// Bindings returns the number of listeners the widget currently holds.
func (w *Widget) Bindings() int { return len(w.bindings) }

func (w *Widget) measure() Snapshot {
	return ComputeSnapshot(w.cfg, AvailableLength(w.cfg.Width, w.surface.Measure()))
}

func (w *Widget) applyOffset() {
	w.surface.SetHandleOffset(w.offset)
	w.surface.SetFillLength(w.snap.FillLength(w.offset))
}

func (w *Widget) update(dt float64) {
	w.timers.advance(dt)
	if a, ok := w.surface.(Animator); ok {
		a.Update(dt)
	}
}

// --- Gesture callbacks ---

func (w *Widget) onStart(ev *InputEvent) {
	if w.state == StateCompleted || w.session.Active() {
		return
	}
	snap := w.measure()
	if !w.session.Start(ev.Input, snap) {
		return
	}
	w.snap = snap
	w.pointerID = ev.PointerID
	w.surface.SetTransitions(false)
	if w.host != nil {
		w.host.logf("widget %d: drag start (%s, pointer %d) max=%.1f threshold=%.1f",
			w.id, ev.Input.Kind, ev.PointerID, snap.MaxDistance, snap.Threshold)
	}
}

func (w *Widget) onMove(ev *InputEvent) {
	if !w.session.Active() || ev.PointerID != w.pointerID {
		return
	}
	ev.PreventDefault()
	w.offset, _ = w.session.Move(ev.Input)
	w.applyOffset()
}

func (w *Widget) onEnd(ev *InputEvent) {
	if !w.session.Active() || ev.PointerID != w.pointerID {
		return
	}
	w.surface.SetTransitions(true)
	d := w.session.End()
	if w.host != nil {
		w.host.logf("widget %d: drag end offset=%.1f -> %s", w.id, w.session.Offset(), w.session.State())
	}
	switch d {
	case DecisionCommit:
		w.commit()
	case DecisionRevert:
		w.revert()
	}
	w.session.Settle()
}

func (w *Widget) onResetClick(*InputEvent) {
	w.reset()
}

// --- Hit areas ---

// handleArea is the handle's current circle in host coordinates.
type handleArea struct{ w *Widget }

func (a handleArea) Contains(x, y float64) bool {
	r := a.w.snap.HandleRect(a.w.offset).Offset(a.w.X, a.w.Y)
	radius := r.Width / 2
	return HitCircle{CenterX: r.X + radius, CenterY: r.Y + radius, Radius: radius}.Contains(x, y)
}

// resetArea is the reset button, clickable only while completed.
type resetArea struct{ w *Widget }

func (a resetArea) Contains(x, y float64) bool {
	if a.w.state != StateCompleted {
		return false
	}
	return a.w.snap.ResetButtonRect(a.w.cfg.Height).Offset(a.w.X, a.w.Y).Contains(x, y)
}
