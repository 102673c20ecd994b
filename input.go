package slide

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitShape is a region in host coordinates that scopes a listener.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Events ---

// InputEvent is passed to listeners. The host reuses one value per
// dispatch; listeners must not keep the pointer.
type InputEvent struct {
	Phase     Phase
	Input     PointerInput
	PointerID int
	// X and Y are the raw host coordinates of the pointer.
	X, Y float64

	passive   bool
	prevented bool
}

// PreventDefault stops the host's default action (OnDefaultAction) for this
// event. It has no effect inside a passive listener.
func (e *InputEvent) PreventDefault() {
	if !e.passive {
		e.prevented = true
	}
}

// DefaultPrevented reports whether a non-passive listener prevented the
// default action.
func (e *InputEvent) DefaultPrevented() bool { return e.prevented }

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
}

// --- Listener registry ---

// ListenerOptions tunes a listener registration.
type ListenerOptions struct {
	// Passive listeners cannot prevent the default action.
	Passive bool
}

type listener struct {
	id      uint32
	kind    InputKind
	target  HitShape
	passive bool
	fn      func(*InputEvent)
	removed bool
}

type listenerRegistry struct {
	start  []*listener
	move   []*listener
	end    []*listener
	click  []*listener
	nextID uint32
}

func (r *listenerRegistry) slot(p Phase) *[]*listener {
	switch p {
	case PhaseStart:
		return &r.start
	case PhaseMove:
		return &r.move
	case PhaseEnd:
		return &r.end
	default:
		return &r.click
	}
}

func (r *listenerRegistry) count() int {
	return len(r.start) + len(r.move) + len(r.end) + len(r.click)
}

// ListenerHandle detaches a listener registered with Host.Listen.
type ListenerHandle struct {
	l     *listener
	reg   *listenerRegistry
	phase Phase
}

// Remove detaches the listener. It is safe to call on a zero handle and
// more than once. A listener removed during a dispatch does not fire for
// the rest of that dispatch.
func (h ListenerHandle) Remove() {
	if h.reg == nil || h.l == nil || h.l.removed {
		return
	}
	h.l.removed = true
	s := h.reg.slot(h.phase)
	*s = removeListener(*s, h.l)
}

// Active reports whether the listener is still attached.
func (h ListenerHandle) Active() bool {
	return h.l != nil && !h.l.removed
}

func removeListener(s []*listener, l *listener) []*listener {
	for i := range s {
		if s[i] == l {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

// Listen registers fn for one phase of pointer input from the given kinds.
// A nil target listens on the whole host; otherwise start and click events
// only fire when the pointer is inside target, while move and end events
// fire wherever the pointer is, so a drag can leave the target.
func (h *Host) Listen(phase Phase, kind InputKind, target HitShape, opts ListenerOptions, fn func(*InputEvent)) ListenerHandle {
	h.listeners.nextID++
	l := &listener{
		id:      h.listeners.nextID,
		kind:    kind,
		target:  target,
		passive: opts.Passive,
		fn:      fn,
	}
	s := h.listeners.slot(phase)
	*s = append(*s, l)
	if h.debug {
		h.debugCheckListenerCount()
	}
	return ListenerHandle{l: l, reg: &h.listeners, phase: phase}
}

// ListenerCount returns the number of attached listeners across all phases.
func (h *Host) ListenerCount() int {
	return h.listeners.count()
}

// --- Input processing ---

// processInput is called from Host.Update to handle all mouse and touch
// input. Injected events replace real mouse input for the frame they are
// consumed in.
func (h *Host) processInput() {
	if h.processInjectedInput() {
		return
	}
	h.processMousePointer()
	h.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0). Only the left button
// drives the widget.
func (h *Host) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	h.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (h *Host) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(h.prevTouchIDs[:0])
	h.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		h.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, ps.lastX, ps.lastY, false)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// Feed drives the pointer state machine from an input source other than
// ebiten, such as a terminal. Pointer 0 is the mouse; 1-9 are touches.
// Call it with pressed=true on every position change while held and once
// with pressed=false on release.
func (h *Host) Feed(pointerID int, x, y float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	h.processPointer(pointerID, x, y, pressed)
}

// processPointer runs the press/move/release state machine for one pointer
// and dispatches the matching listener phase.
func (h *Host) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &h.pointers[pointerID]
	moved := x != ps.lastX || y != ps.lastY

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		h.dispatch(PhaseStart, pointerID, x, y)
	case !pressed && ps.down:
		ps.down = false
		h.dispatch(PhaseEnd, pointerID, x, y)
		h.dispatchClick(pointerID, ps.startX, ps.startY, x, y)
		ps.lastX, ps.lastY = x, y
	case pressed && ps.down:
		if moved {
			ps.lastX, ps.lastY = x, y
			h.dispatch(PhaseMove, pointerID, x, y)
		}
	default:
		// Hover: only the mouse can move without being pressed.
		if moved && pointerID == 0 {
			ps.lastX, ps.lastY = x, y
			h.dispatch(PhaseMove, pointerID, x, y)
		}
	}
}

func kindOf(pointerID int) InputKind {
	if pointerID == 0 {
		return InputMouse
	}
	return InputTouch
}

// normalize builds the PointerInput for an event on pointerID. Touch events
// list the event's own pointer first among the active touches, the way the
// widget expects "the first touch" to be the one it captured.
func (h *Host) normalize(phase Phase, pointerID int, x, y float64) PointerInput {
	if pointerID == 0 {
		return normalizeMouse(x)
	}
	h.touchBuf = h.touchBuf[:0]
	h.changedBuf = h.changedBuf[:0]
	h.changedBuf = append(h.changedBuf, TouchPoint{ID: pointerID, X: x, Y: y})
	if phase != PhaseEnd {
		h.touchBuf = append(h.touchBuf, TouchPoint{ID: pointerID, X: x, Y: y})
	}
	for i := 1; i < maxPointers; i++ {
		if i == pointerID || !h.pointers[i].down {
			continue
		}
		h.touchBuf = append(h.touchBuf, TouchPoint{ID: i, X: h.pointers[i].lastX, Y: h.pointers[i].lastY})
	}
	return normalizeTouch(h.touchBuf, h.changedBuf)
}

// dispatch fires the listeners of one phase. Listeners are snapshotted
// first so handlers may add or remove listeners while running.
func (h *Host) dispatch(phase Phase, pointerID int, x, y float64) {
	kind := kindOf(pointerID)
	h.event = InputEvent{
		Phase:     phase,
		Input:     h.normalize(phase, pointerID, x, y),
		PointerID: pointerID,
		X:         x,
		Y:         y,
	}

	h.dispatchBuf = append(h.dispatchBuf[:0], *h.listeners.slot(phase)...)
	for _, l := range h.dispatchBuf {
		if l.removed || l.kind&kind == 0 {
			continue
		}
		if phase == PhaseStart && l.target != nil && !l.target.Contains(x, y) {
			continue
		}
		h.event.passive = l.passive
		l.fn(&h.event)
	}
	clear(h.dispatchBuf)

	if phase == PhaseMove && kind == InputTouch && !h.event.prevented && h.OnDefaultAction != nil {
		h.OnDefaultAction(h.event)
	}
}

// dispatchClick fires click listeners whose target contains both the press
// and the release position.
func (h *Host) dispatchClick(pointerID int, sx, sy, x, y float64) {
	kind := kindOf(pointerID)
	h.dispatchBuf = append(h.dispatchBuf[:0], h.listeners.click...)
	for _, l := range h.dispatchBuf {
		if l.removed || l.kind&kind == 0 {
			continue
		}
		if l.target != nil && (!l.target.Contains(sx, sy) || !l.target.Contains(x, y)) {
			continue
		}
		h.event = InputEvent{
			Phase:     PhaseClick,
			Input:     h.normalize(PhaseEnd, pointerID, x, y),
			PointerID: pointerID,
			X:         x,
			Y:         y,
			passive:   l.passive,
		}
		l.fn(&h.event)
	}
	clear(h.dispatchBuf)
}
