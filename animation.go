package slide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition durations used by EbitenSurface. They mirror the original
// stylesheet: the handle eases over 0.2s, the fill follows in 0.05s.
const (
	handleTransition float32 = 0.2
	fillTransition   float32 = 0.05
)

// transition animates one float64 field toward a target. Call Update(dt)
// each frame; Done is set once the target is reached.
type transition struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// newTransition starts animating *field from its current value to to over
// duration seconds using fn.
func newTransition(field *float64, to float64, duration float32, fn ease.TweenFunc) *transition {
	return &transition{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value to the field.
func (t *transition) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}

// animatedValue is a value that either jumps or eases to new targets.
type animatedValue struct {
	current  float64
	target   float64
	duration float32
	anim     *transition
}

// set moves the value to v, animated when animate is true.
func (a *animatedValue) set(v float64, animate bool) {
	a.target = v
	if !animate || a.current == v {
		a.current = v
		a.anim = nil
		return
	}
	a.anim = newTransition(&a.current, v, a.duration, ease.OutQuad)
}

// snap jumps to the target, finishing any running animation.
func (a *animatedValue) snap() {
	a.current = a.target
	a.anim = nil
}

func (a *animatedValue) update(dt float64) {
	if a.anim == nil {
		return
	}
	a.anim.Update(float32(dt))
	if a.anim.Done {
		a.current = a.target
		a.anim = nil
	}
}

// animating reports whether a transition is in progress.
func (a *animatedValue) animating() bool { return a.anim != nil }
