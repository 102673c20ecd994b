package slide

import (
	"bytes"
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font measures and draws the labels of an EbitenSurface: the track text,
// the handle arrow, the success message and the reset button caption.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
	// DrawString draws s with its top-left corner at (x, y).
	DrawString(dst *ebiten.Image, s string, x, y float64, clr color.Color)
}

// --- DebugFont ---

// debug font metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

// DebugFont is ebitenutil's built-in bitmap font. It ignores the color and
// always draws white. It is the font of a surface with no Font set.
type DebugFont struct{}

// MeasureString returns the width of s in 6px cells and one line height.
func (DebugFont) MeasureString(s string) (width, height float64) {
	return float64(utf8.RuneCountInString(s) * glyphW), glyphH
}

// LineHeight returns the height of one debug font line.
func (DebugFont) LineHeight() float64 { return glyphH }

// DrawString implements Font.
func (DebugFont) DrawString(dst *ebiten.Image, s string, x, y float64, _ color.Color) {
	ebitenutil.DebugPrintAt(dst, s, int(x), int(y))
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType label rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	if size <= 0 {
		return nil, fmt.Errorf("slide: font size must be positive, got %v", size)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("slide: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// LoadDefaultFont loads Go Regular at the given size.
func LoadDefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 { return f.lh }

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace { return f.face }

// DrawString implements Font.
func (f *TTFFont) DrawString(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}

// drawCentered draws s centered in the w×h box at (x, y).
func drawCentered(dst *ebiten.Image, f Font, s string, x, y, w, h float64, clr color.Color) {
	tw, th := f.MeasureString(s)
	f.DrawString(dst, s, x+(w-tw)/2, y+(h-th)/2, clr)
}
