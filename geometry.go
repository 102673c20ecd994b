package slide

import "math"

const (
	// Inset is the resting gap between the handle and the track edge.
	Inset = 5.0

	// fallbackLength is used when a relative width cannot be measured.
	fallbackLength = DefaultWidth
)

// Extent is a measurement of the rendered widget, supplied by a Surface.
// Zero means "not measurable".
type Extent struct {
	Container float64 // rendered width of the track container
	Host      float64 // width of the element or area the widget lives in
}

// MeasureLength returns the extent of a track of the given width inside a
// host of the given size. Surfaces without a layout engine of their own use
// it to implement Measure.
func MeasureLength(width Length, host float64) Extent {
	if host < 0 {
		host = 0
	}
	return Extent{Container: width.Resolve(host), Host: host}
}

// AvailableLength returns the track length in pixels. Absolute widths are
// used as is. Relative widths fall back from the measured container to the
// measured host and finally to the default width.
func AvailableLength(width Length, ext Extent) float64 {
	if !width.Relative {
		return width.Value
	}
	if ext.Container > 0 {
		return ext.Container
	}
	if ext.Host > 0 {
		return ext.Host
	}
	return fallbackLength
}

// Snapshot is the geometry of one gesture: how far the handle can travel
// and how far it must travel to complete.
type Snapshot struct {
	Available      float64 // track length in pixels
	HandleDiameter float64
	MaxDistance    float64 // always >= 0
	Threshold      float64 // in [0, MaxDistance]
}

// ComputeSnapshot derives the gesture geometry from a config and the
// available track length. It is pure and cheap enough to call on every
// gesture start.
func ComputeSnapshot(cfg Config, available float64) Snapshot {
	cfg = cfg.Normalize()
	if math.IsNaN(available) || available < 0 {
		available = 0
	}
	d := math.Max(cfg.Height-2*Inset, 0)
	maxDist := available - cfg.Height + Inset
	if maxDist < 0 || math.IsNaN(maxDist) {
		maxDist = 0
	}
	return Snapshot{
		Available:      available,
		HandleDiameter: d,
		MaxDistance:    maxDist,
		Threshold:      maxDist * cfg.Threshold,
	}
}

// Clamp limits a raw drag delta to the snapshot's travel range.
func (s Snapshot) Clamp(delta float64) float64 {
	if delta < 0 || math.IsNaN(delta) {
		return 0
	}
	if delta > s.MaxDistance {
		return s.MaxDistance
	}
	return delta
}

// FillLength returns the length of the track fill for a handle offset.
func (s Snapshot) FillLength(offset float64) float64 {
	return s.HandleDiameter + offset
}

// Layout positions of the decorations drawn around the track, relative to
// the widget origin.
const (
	successGap        = 10.0
	successLineHeight = 16.0
	resetButtonWidth  = 80.0
	resetButtonHeight = 28.0
	resetButtonGap    = 8.0
)

// HandleRect returns the handle bounds for an offset, relative to the widget
// origin.
func (s Snapshot) HandleRect(offset float64) Rect {
	return Rect{X: Inset + offset, Y: Inset, Width: s.HandleDiameter, Height: s.HandleDiameter}
}

// SuccessOrigin returns where the success message is drawn for a widget of
// the given height.
func (s Snapshot) SuccessOrigin(height float64) Vec2 {
	return Vec2{X: 0, Y: height + successGap}
}

// ResetButtonRect returns the reset button bounds for a widget of the given
// height, centered under the track.
func (s Snapshot) ResetButtonRect(height float64) Rect {
	return Rect{
		X:      math.Max((s.Available-resetButtonWidth)/2, 0),
		Y:      height + successGap + successLineHeight + resetButtonGap,
		Width:  resetButtonWidth,
		Height: resetButtonHeight,
	}
}
