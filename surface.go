package slide

import "github.com/hajimehoshi/ebiten/v2"

// Surface is the rendering side of a widget. The widget drives it and never
// reads back from it except through Measure. Offsets are relative to the
// handle's resting position; the surface adds Inset itself.
type Surface interface {
	// Render rebuilds the visuals for a new config.
	Render(cfg Config)
	// Measure reports the rendered size used to resolve relative widths.
	Measure() Extent
	// SetHandleOffset moves the handle.
	SetHandleOffset(offset float64)
	// SetFillLength sets the length of the track fill.
	SetFillLength(length float64)
	// SetCompleted toggles the completed look.
	SetCompleted(completed bool)
	// SetSuccessShown toggles the success message.
	SetSuccessShown(shown bool)
	// SetTransitions enables or disables animated position changes. They are
	// disabled while the handle tracks a pointer.
	SetTransitions(enabled bool)
}

// Animator is implemented by surfaces that animate over time. The widget
// forwards Host.Advance to it.
type Animator interface {
	Update(dt float64)
}

// Drawer is implemented by surfaces that render into an ebiten image.
// Host.Draw calls it with the widget's position.
type Drawer interface {
	Draw(dst *ebiten.Image, x, y float64)
}

// nopSurface lets a widget run without visuals.
type nopSurface struct{}

func (nopSurface) Render(Config) {}
func (nopSurface) Measure() Extent { return Extent{} }
func (nopSurface) SetHandleOffset(float64) {}
func (nopSurface) SetFillLength(float64) {}
func (nopSurface) SetCompleted(bool) {}
func (nopSurface) SetSuccessShown(bool) {}
func (nopSurface) SetTransitions(bool) {}
