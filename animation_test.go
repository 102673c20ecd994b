package slide

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionReachesTarget(t *testing.T) {
	v := 0.0
	tr := newTransition(&v, 100, 0.2, ease.Linear)
	for i := 0; i < 30 && !tr.Done; i++ {
		tr.Update(1.0 / 60)
	}
	if !tr.Done {
		t.Fatal("transition did not finish")
	}
	if math.Abs(v-100) > 0.01 {
		t.Errorf("value = %v, want 100", v)
	}
}

func TestTransitionNilSafe(t *testing.T) {
	var tr *transition
	tr.Update(1) // must not panic
}

func TestAnimatedValueJump(t *testing.T) {
	a := animatedValue{duration: handleTransition}
	a.set(50, false)
	if a.current != 50 || a.animating() {
		t.Errorf("current = %v animating = %v", a.current, a.animating())
	}
}

func TestAnimatedValueEases(t *testing.T) {
	a := animatedValue{duration: handleTransition}
	a.set(200, true)
	if !a.animating() {
		t.Fatal("expected animation")
	}

	a.update(0.1)
	if a.current <= 0 || a.current >= 200 {
		t.Errorf("midway value = %v, want between 0 and 200", a.current)
	}
	// OutQuad is past the linear midpoint at half time.
	if a.current <= 100 {
		t.Errorf("midway value = %v, want > 100 for ease-out", a.current)
	}

	a.update(0.2)
	if a.animating() || a.current != 200 {
		t.Errorf("after duration: current = %v animating = %v", a.current, a.animating())
	}
}

func TestAnimatedValueSnap(t *testing.T) {
	a := animatedValue{duration: fillTransition}
	a.set(80, true)
	a.snap()
	if a.current != 80 || a.animating() {
		t.Errorf("after snap: current = %v animating = %v", a.current, a.animating())
	}
}

func TestAnimatedValueRetarget(t *testing.T) {
	a := animatedValue{duration: handleTransition}
	a.set(200, true)
	a.update(0.1)
	mid := a.current
	a.set(0, true)
	a.update(0.05)
	if a.current >= mid {
		t.Errorf("retargeted value %v did not move back from %v", a.current, mid)
	}
	a.update(1)
	if a.current != 0 {
		t.Errorf("final = %v, want 0", a.current)
	}
}

func TestAnimatedValueSameTarget(t *testing.T) {
	a := animatedValue{duration: handleTransition}
	a.set(0, true)
	if a.animating() {
		t.Error("animating toward the current value")
	}
}
