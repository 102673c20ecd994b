package slide

import (
	"fmt"
	"io"
	"os"
)

// logf prints a debug line when debug mode is on.
func (h *Host) logf(format string, args ...any) {
	if !h.debug {
		return
	}
	var out io.Writer = os.Stderr
	if h.DebugOutput != nil {
		out = h.DebugOutput
	}
	_, _ = fmt.Fprintf(out, "[slide] "+format+"\n", args...)
}

// debugMaxListeners is the listener count above which a host is most
// likely leaking bindings.
const debugMaxListeners = 1000

// debugCheckListenerCount warns on stderr if the host holds more than
// debugMaxListeners listeners.
func (h *Host) debugCheckListenerCount() {
	if n := h.listeners.count(); n > debugMaxListeners {
		h.logf("warning: %d listeners attached (threshold %d)", n, debugMaxListeners)
	}
}
