package slide

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit can be returned from an update func to end Run without an error.
var ErrQuit = errors.New("slide: quit")

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ExitOnScriptDone ends Run once an attached TestRunner has finished.
	ExitOnScriptDone bool
}

// gameShell adapts a Host to ebiten.Game.
type gameShell struct {
	host *Host
	cfg  RunConfig
	fps  *fpsOverlay
}

// Run opens a window and drives h until the window closes or the update
// func returns an error. Layout keeps the host size in sync with the window.
func Run(h *Host, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	h.SetSize(float64(cfg.Width), float64(cfg.Height))

	g := &gameShell{host: h, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *gameShell) Update() error {
	if err := g.host.Update(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	if g.cfg.ExitOnScriptDone && g.host.testRunner != nil && g.host.testRunner.Done() &&
		len(g.host.screenshotQueue) == 0 {
		return ErrQuit
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	screen.Fill(g.host.ClearColor)
	g.host.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
