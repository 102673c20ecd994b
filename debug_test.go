package slide

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestLogfSilentByDefault(t *testing.T) {
	h, buf := newTestHost()
	h.logf("hello %d", 1)
	if buf.Len() != 0 {
		t.Errorf("logged with debug off: %q", buf.String())
	}
}

func TestLogfPrefix(t *testing.T) {
	h, buf := newTestHost()
	h.SetDebugMode(true)
	h.logf("hello %d", 1)
	if got := buf.String(); got != "[slide] hello 1\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLogfDefaultsToStderr(t *testing.T) {
	h := NewHost(100, 100)
	h.SetDebugMode(true)

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	h.logf("to stderr")
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	if !strings.Contains(buf.String(), "[slide] to stderr") {
		t.Errorf("stderr = %q", buf.String())
	}
}

func TestDebugMode_ListenerCountWarning(t *testing.T) {
	h, buf := newTestHost()
	h.SetDebugMode(true)

	for i := 0; i < debugMaxListeners+1; i++ {
		h.Listen(PhaseMove, InputAny, nil, ListenerOptions{}, func(*InputEvent) {})
	}
	if !strings.Contains(buf.String(), "warning: 1001 listeners") {
		t.Errorf("expected listener warning, got: %q", buf.String())
	}
}

func TestReleaseMode_NoListenerWarning(t *testing.T) {
	h, buf := newTestHost()
	for i := 0; i < debugMaxListeners+1; i++ {
		h.Listen(PhaseMove, InputAny, nil, ListenerOptions{}, func(*InputEvent) {})
	}
	if buf.Len() != 0 {
		t.Errorf("release mode logged: %q", buf.String())
	}
}

func TestDebugMode_LeakedWidgetsWarn(t *testing.T) {
	h, buf := newTestHost()
	h.SetDebugMode(true)

	// Widgets that are never detached keep their listeners.
	n := debugMaxListeners/bindingsPerWidget + 1
	for i := 0; i < n; i++ {
		NewWidget(DefaultConfig(), nil).Attach(h)
	}
	if !strings.Contains(buf.String(), "warning:") {
		t.Error("expected a warning once listeners pile up")
	}
}
