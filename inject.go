package slide

// syntheticPointerEvent represents a single injected pointer event in host
// coordinates. Touch events use pointer slot 1.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	touch   bool
}

// injectedTouchSlot is the pointer slot used by injected touch events.
const injectedTouchSlot = 1

// InjectPress queues a mouse press at (x, y). The event is consumed on the
// next frame's processInput call.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a mouse move at (x, y) with the button held down. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a mouse release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full mouse drag: a press at (fromX, fromY), frames-2
// evenly spaced moves ending at (toX, toY), and a release there. The
// release does not move the handle, so the last move lands on the target.
// Minimum frames is 3.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	h.injectDrag(fromX, fromY, toX, toY, frames, false)
}

// InjectTouchDrag is InjectDrag for a single finger.
func (h *Host) InjectTouchDrag(fromX, fromY, toX, toY float64, frames int) {
	h.injectDrag(fromX, fromY, toX, toY, frames, true)
}

func (h *Host) injectDrag(fromX, fromY, toX, toY float64, frames int, touch bool) {
	if frames < 3 {
		frames = 3
	}
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: fromX, y: fromY, pressed: true, touch: touch})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		h.injectQueue = append(h.injectQueue, syntheticPointerEvent{
			x:       fromX + (toX-fromX)*t,
			y:       fromY + (toY-fromY)*t,
			pressed: true,
			touch:   touch,
		})
	}
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: toX, y: toY, touch: touch})
}

// PendingInjections returns the number of queued synthetic events.
func (h *Host) PendingInjections() int { return len(h.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real input
// is skipped for that frame).
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	pointerID := 0
	if evt.touch {
		pointerID = injectedTouchSlot
	}
	h.processPointer(pointerID, evt.x, evt.y, evt.pressed)
	return true
}
