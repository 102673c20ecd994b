package slide

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenSurfaceMeasure(t *testing.T) {
	h := NewHost(800, 600)
	s := NewEbitenSurface(h)
	s.Render(Config{Width: Percent(50)})
	if got := s.Measure(); got != (Extent{Container: 400, Host: 800}) {
		t.Errorf("Measure = %+v", got)
	}

	var detached EbitenSurface
	if got := detached.Measure(); got != (Extent{}) {
		t.Errorf("Measure without host = %+v", got)
	}
}

func TestEbitenSurfaceTransitions(t *testing.T) {
	h := NewHost(800, 600)
	s := NewEbitenSurface(h)

	s.SetHandleOffset(100)
	if !s.Animating() {
		t.Fatal("expected an animated handle move")
	}
	s.Update(1)
	if s.HandleOffset() != 100 || s.Animating() {
		t.Errorf("HandleOffset = %v animating = %v", s.HandleOffset(), s.Animating())
	}

	s.SetTransitions(false)
	s.SetHandleOffset(30)
	s.SetFillLength(80)
	if s.HandleOffset() != 30 || s.FillLength() != 80 || s.Animating() {
		t.Errorf("tracking: offset %v fill %v animating %v", s.HandleOffset(), s.FillLength(), s.Animating())
	}

	s.SetTransitions(true)
	s.SetHandleOffset(0)
	s.SetTransitions(false)
	if s.HandleOffset() != 0 || s.Animating() {
		t.Errorf("disabling transitions did not finish the animation")
	}
}

func TestEbitenSurfaceFollowsWidget(t *testing.T) {
	h, _ := newTestHost()
	s := NewEbitenSurface(h)
	w := NewWidget(DefaultConfig(), s)
	w.Attach(h)

	h.Feed(0, 30, 30, true)
	h.Feed(0, 130, 30, true)
	if s.HandleOffset() != 100 {
		t.Errorf("HandleOffset while dragging = %v, want 100", s.HandleOffset())
	}
	if s.FillLength() != 150 {
		t.Errorf("FillLength while dragging = %v, want 150", s.FillLength())
	}

	h.Feed(0, 130, 30, false)
	if !s.Animating() {
		t.Fatal("expected the handle to spring back with a transition")
	}
	h.Advance(1)
	if s.HandleOffset() != 0 || s.FillLength() != 50 {
		t.Errorf("after revert: offset %v fill %v", s.HandleOffset(), s.FillLength())
	}
}

func TestEbitenSurfaceDraw(t *testing.T) {
	h := NewHost(400, 200)
	s := NewEbitenSurface(h)
	w := NewWidget(DefaultConfig(), s)
	w.Attach(h)
	w.ProgrammaticComplete()
	h.Advance(1)

	dst := ebiten.NewImage(400, 200)
	// Drawing every decoration must not panic.
	s.Draw(dst, 10, 10)
	h.Draw(dst)
}

func TestEbitenSurfaceFont(t *testing.T) {
	s := NewEbitenSurface(nil)
	if _, ok := s.font().(DebugFont); !ok {
		t.Errorf("default font = %T, want DebugFont", s.font())
	}
	f, err := LoadDefaultFont(14)
	if err != nil {
		t.Fatal(err)
	}
	s.Font = f
	if s.font() != Font(f) {
		t.Error("Font field ignored")
	}
}

func TestEbitenSurfaceDrawTTF(t *testing.T) {
	h := NewHost(400, 200)
	s := NewEbitenSurface(h)
	f, err := LoadDefaultFont(16)
	if err != nil {
		t.Fatal(err)
	}
	s.Font = f
	w := NewWidget(Config{Width: Pixels(300)}, s)
	w.Attach(h)
	w.ProgrammaticComplete()
	h.Advance(1)
	s.Draw(ebiten.NewImage(400, 200), 0, 0)
}
