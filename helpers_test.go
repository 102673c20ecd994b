package slide

import (
	"bytes"
	"time"
)

// recordingSurface is a Surface that remembers the last value of every
// setter and counts renders.
type recordingSurface struct {
	extent       Extent
	cfg          Config
	renders      int
	offset       float64
	fill         float64
	completed    bool
	successShown bool
	transitions  bool
	offsets      []float64
}

func (s *recordingSurface) Render(cfg Config) { s.cfg = cfg; s.renders++ }
func (s *recordingSurface) Measure() Extent { return s.extent }
func (s *recordingSurface) SetHandleOffset(offset float64) {
	s.offset = offset
	s.offsets = append(s.offsets, offset)
}
func (s *recordingSurface) SetFillLength(length float64) { s.fill = length }
func (s *recordingSurface) SetCompleted(completed bool) { s.completed = completed }
func (s *recordingSurface) SetSuccessShown(shown bool) { s.successShown = shown }
func (s *recordingSurface) SetTransitions(enabled bool) { s.transitions = enabled }

// signalLog collects signals in delivery order.
type signalLog struct {
	sigs []Signal
}

func (l *signalLog) record(sig Signal) { l.sigs = append(l.sigs, sig) }

func (l *signalLog) count(t SignalType) int {
	n := 0
	for _, s := range l.sigs {
		if s.Type == t {
			n++
		}
	}
	return n
}

// storeRecorder is a SignalStore that records emitted signals.
type storeRecorder struct {
	signalLog
}

func (r *storeRecorder) EmitSignal(sig Signal) { r.record(sig) }

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestHost returns a 800x600 host with a fixed clock and debug output
// captured in the returned buffer.
func newTestHost() (*Host, *bytes.Buffer) {
	h := NewHost(800, 600)
	h.Clock = func() time.Time { return testTime }
	var buf bytes.Buffer
	h.DebugOutput = &buf
	return h, &buf
}

// newTestWidget attaches a widget with cfg at (0, 0) to a fresh host. With
// the default config the handle center rests at (30, 30).
func newTestWidget(cfg Config) (*Widget, *Host, *recordingSurface) {
	h, _ := newTestHost()
	s := &recordingSurface{}
	w := NewWidget(cfg, s)
	w.Attach(h)
	return w, h, s
}

// drag presses pointer id at (fromX, y), moves to toX and releases there.
func drag(h *Host, id int, fromX, toX, y float64) {
	h.Feed(id, fromX, y, true)
	h.Feed(id, toX, y, true)
	h.Feed(id, toX, y, false)
}
