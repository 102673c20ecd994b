package slide

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// The text is redrawn into its own image about twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	fps     func() float64
	tps     func() float64
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		img:     ebiten.NewImage(100, 32),
		elapsed: fpsRefresh,
		fps:     ebiten.ActualFPS,
		tps:     ebiten.ActualTPS,
	}
}

// update refreshes the overlay text once fpsRefresh seconds have passed.
// Returns true if the text was redrawn.
func (o *fpsOverlay) update(dt float64) bool {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return false
	}
	o.elapsed = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", o.fps(), o.tps()))
	return true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
