package slide

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Colors of the parts the config does not theme.
var (
	trackBackground = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	handleShadow    = color.RGBA{A: 0x4c}
	buttonColor     = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	labelColor      = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	lightLabelColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// EbitenSurface draws a widget with ebiten vector shapes and Font labels.
// Handle and fill movements ease with gween tweens while transitions are
// enabled and jump while the handle follows a pointer.
type EbitenSurface struct {
	// Font draws the labels. Nil means DebugFont.
	Font Font

	host *Host
	cfg  Config

	handle animatedValue
	fill   animatedValue

	transitions  bool
	completed    bool
	successShown bool
}

// NewEbitenSurface creates a surface that resolves relative widths against
// h's layout size.
func NewEbitenSurface(h *Host) *EbitenSurface {
	return &EbitenSurface{
		host:        h,
		cfg:         DefaultConfig(),
		handle:      animatedValue{duration: handleTransition},
		fill:        animatedValue{duration: fillTransition},
		transitions: true,
	}
}

// Render implements Surface.
func (s *EbitenSurface) Render(cfg Config) {
	s.cfg = cfg.Normalize()
	s.handle.snap()
	s.fill.snap()
}

// Measure implements Surface.
func (s *EbitenSurface) Measure() Extent {
	if s.host == nil {
		return Extent{}
	}
	return MeasureLength(s.cfg.Width, s.host.Width)
}

// SetHandleOffset implements Surface.
func (s *EbitenSurface) SetHandleOffset(offset float64) {
	s.handle.set(offset, s.transitions)
}

// SetFillLength implements Surface.
func (s *EbitenSurface) SetFillLength(length float64) {
	s.fill.set(length, s.transitions)
}

// SetCompleted implements Surface.
func (s *EbitenSurface) SetCompleted(completed bool) { s.completed = completed }

// SetSuccessShown implements Surface.
func (s *EbitenSurface) SetSuccessShown(shown bool) { s.successShown = shown }

// SetTransitions implements Surface. Disabling transitions finishes any
// running animation immediately.
func (s *EbitenSurface) SetTransitions(enabled bool) {
	s.transitions = enabled
	if !enabled {
		s.handle.snap()
		s.fill.snap()
	}
}

// Update implements Animator.
func (s *EbitenSurface) Update(dt float64) {
	s.handle.update(dt)
	s.fill.update(dt)
}

// HandleOffset returns the displayed handle offset, which lags the logical
// offset while a transition runs.
func (s *EbitenSurface) HandleOffset() float64 { return s.handle.current }

// FillLength returns the displayed fill length.
func (s *EbitenSurface) FillLength() float64 { return s.fill.current }

// Animating reports whether a transition is in progress.
func (s *EbitenSurface) Animating() bool {
	return s.handle.animating() || s.fill.animating()
}

// Draw implements Drawer.
func (s *EbitenSurface) Draw(dst *ebiten.Image, x, y float64) {
	cfg := s.cfg
	length := AvailableLength(cfg.Width, s.Measure())
	snap := ComputeSnapshot(cfg, length)
	h := cfg.Height
	d := snap.HandleDiameter

	drawPill(dst, x, y, length, h, trackBackground)
	if s.fill.current > 0 {
		drawPill(dst, x+Inset, y+Inset, s.fill.current, d, cfg.TrackColor)
	}

	f := s.font()
	if !s.completed {
		drawCentered(dst, f, cfg.Text, x, y, length, h, labelColor)
	}

	r := d / 2
	cx := x + Inset + s.handle.current + r
	cy := y + Inset + r
	vector.DrawFilledCircle(dst, float32(cx), float32(cy+2), float32(r), handleShadow, true)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), cfg.HandleColor, true)
	drawCentered(dst, f, ">", cx-r, cy-r, d, d, labelColor)

	if s.successShown {
		o := snap.SuccessOrigin(h)
		tw, _ := f.MeasureString(cfg.SuccessText)
		f.DrawString(dst, cfg.SuccessText, x+o.X+(length-tw)/2, y+o.Y, cfg.TrackColor)
	}
	if s.completed {
		b := snap.ResetButtonRect(h).Offset(x, y)
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), buttonColor, false)
		vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, trackBackground, false)
		drawCentered(dst, f, "Reset", b.X, b.Y, b.Width, b.Height, lightLabelColor)
	}
}

func (s *EbitenSurface) font() Font {
	if s.Font == nil {
		return DebugFont{}
	}
	return s.Font
}

// drawPill fills a rectangle with fully rounded ends.
func drawPill(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := math.Min(h, w) / 2
	if w > 2*r {
		vector.DrawFilledRect(dst, float32(x+r), float32(y), float32(w-2*r), float32(h), clr, true)
	}
	vector.DrawFilledCircle(dst, float32(x+r), float32(y+h/2), float32(r), clr, true)
	vector.DrawFilledCircle(dst, float32(x+w-r), float32(y+h/2), float32(r), clr, true)
}
