// Signals stacks three differently configured widgets and routes their
// signals through host handlers and a Donburi world. Press R to reset all
// widgets.
package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/slide"
	"github.com/phanxgames/slide/ecs"
)

const (
	windowTitle = "Slide - Signals Example"
	screenW     = 640
	screenH     = 560
)

type demo struct {
	host     *slide.Host
	world    donburi.World
	accepted int
	resets   int
}

func (d *demo) update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		for _, w := range d.host.Widgets() {
			if w.IsCompleted() {
				w.ProgrammaticReset()
			}
		}
	}
	ecs.SignalEventType.ProcessEvents(d.world)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (accepted %d, resets %d)", windowTitle, d.accepted, d.resets))
	return nil
}

func main() {
	host := slide.NewHost(screenW, screenH)
	host.ClearColor = slide.DefaultBackground
	host.OnDefaultAction = func(ev slide.InputEvent) {
		log.Printf("unprevented touch move at (%.0f, %.0f)", ev.X, ev.Y)
	}

	d := &demo{host: host, world: donburi.NewWorld()}
	host.SetSignalStore(ecs.NewDonburiStore(d.world))
	ecs.SignalEventType.Subscribe(d.world, func(_ donburi.World, sig slide.Signal) {
		switch sig.Type {
		case slide.SignalAccepted:
			d.accepted++
		case slide.SignalReset:
			d.resets++
		}
	})
	host.OnAccepted(func(sig slide.Signal) {
		log.Printf("widget %d accepted", sig.WidgetID)
	})

	configs := []slide.Config{
		slide.DefaultConfig(),
		slide.ConfigFromAttributes(map[string]string{
			slide.AttrText:       "Slide to unlock",
			slide.AttrWidth:      "60%",
			slide.AttrTrackColor: "dodgerblue",
			slide.AttrThreshold:  "0.95",
		}),
		{
			Text:        "Delete account",
			SuccessText: "Deleted",
			Width:       slide.Pixels(420),
			Height:      48,
			TrackColor:  color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
			Threshold:   1,
		},
	}

	y := 40.0
	for _, cfg := range configs {
		w := slide.NewWidget(cfg, slide.NewEbitenSurface(host))
		w.Attach(host)
		w.X = (screenW - w.Snapshot().Available) / 2
		w.Y = y
		y += w.Config().Height + 120
	}

	host.SetUpdateFunc(d.update)

	if err := slide.Run(host, slide.RunConfig{
		Title:  windowTitle,
		Width:  screenW,
		Height: screenH,
	}); err != nil {
		log.Fatal(err)
	}
}
