package slide

import (
	"image/color"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SignalStore is the interface for optional ECS integration.
// When set on a Host, every widget signal is forwarded to it after the
// widget and host handlers have run.
type SignalStore interface {
	EmitSignal(sig Signal)
}

// Host owns the input state shared by the widgets attached to it: the
// listener registry, per-pointer state, signal handlers and the layout
// size relative widths resolve against. A Host and its widgets must be used
// from a single goroutine.
type Host struct {
	widgets []*Widget
	store   SignalStore
	debug   bool

	// Width and Height are the layout size of the area widgets live in.
	// Run keeps them in sync with the window.
	Width, Height float64

	// ClearColor fills the screen before widgets are drawn by Run.
	ClearColor color.RGBA

	// Clock stamps signals. Defaults to time.Now.
	Clock func() time.Time

	// OnDefaultAction runs for touch moves no listener prevented, the way a
	// page scrolls under a finger. Nil disables it.
	OnDefaultAction func(InputEvent)

	// DebugOutput receives debug-mode log lines. Defaults to stderr.
	DebugOutput io.Writer

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// Signal handlers
	signals signalRegistry

	// Input state
	listeners    listenerRegistry
	pointers     [maxPointers]pointerState
	event        InputEvent
	dispatchBuf  []*listener
	touchBuf     []TouchPoint
	changedBuf   []TouchPoint
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	updateFunc func() error

	// Automation
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewHost creates an empty host with the given layout size.
func NewHost(width, height float64) *Host {
	return &Host{
		Width:         width,
		Height:        height,
		Clock:         time.Now,
		ScreenshotDir: "screenshots",
		touchBuf:      make([]TouchPoint, 0, maxPointers),
		changedBuf:    make([]TouchPoint, 0, 1),
	}
}

// SetSize updates the layout size. Relative widths pick it up at the next
// gesture start or reconfigure.
func (h *Host) SetSize(width, height float64) {
	h.Width, h.Height = width, height
}

// Widgets returns the attached widgets in attach order. The returned slice
// MUST NOT be mutated.
func (h *Host) Widgets() []*Widget {
	return h.widgets
}

// SetUpdateFunc sets a callback that Update runs after input and time-based
// work each frame. A non-nil error stops Run.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// Update runs one frame: the test runner, input, time-based work and then
// the update func. Call it from ebiten.Game.Update.
func (h *Host) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()
	h.Advance(dt)
	if h.updateFunc != nil {
		return h.updateFunc()
	}
	return nil
}

// Advance moves widget timers and surface animations forward by dt seconds.
// Update calls it; hosts driven through Feed call it themselves.
func (h *Host) Advance(dt float64) {
	for i := 0; i < len(h.widgets); i++ {
		h.widgets[i].update(dt)
	}
}

// Draw renders every attached widget whose surface implements Drawer, then
// flushes queued screenshots.
func (h *Host) Draw(screen *ebiten.Image) {
	for _, w := range h.widgets {
		if d, ok := w.surface.(Drawer); ok {
			d.Draw(screen, w.X, w.Y)
		}
	}
	h.flushScreenshots(screen)
}

// SetSignalStore sets the optional ECS bridge.
func (h *Host) SetSignalStore(store SignalStore) {
	h.store = store
}

// SetDebugMode enables or disables debug logging of binds, gesture
// decisions and signals.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

func (h *Host) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now()
}

func (h *Host) addWidget(w *Widget) {
	for _, x := range h.widgets {
		if x == w {
			return
		}
	}
	h.widgets = append(h.widgets, w)
}

func (h *Host) removeWidget(w *Widget) {
	for i, x := range h.widgets {
		if x == w {
			copy(h.widgets[i:], h.widgets[i+1:])
			h.widgets[len(h.widgets)-1] = nil
			h.widgets = h.widgets[:len(h.widgets)-1]
			return
		}
	}
}
