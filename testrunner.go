package slide

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Widget int     `json:"widget,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Script actions.
const (
	actionScreenshot = "screenshot"
	actionClick      = "click"
	actionDrag       = "drag"
	actionTouchDrag  = "touchdrag"
	actionWait       = "wait"
	actionComplete   = "complete"
	actionReset      = "reset"
)

// TestRunner sequences injected input, programmatic operations and
// screenshots across frames for automated testing. Attach to a Host via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Host via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case actionScreenshot, actionClick, actionDrag, actionTouchDrag, actionWait, actionComplete, actionReset:
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the host. The runner's step method
// is called from Host.Update before processInput each frame.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Host.Update.
func (r *TestRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case actionScreenshot:
		h.Screenshot(st.Label)
	case actionClick:
		h.InjectClick(st.X, st.Y)
	case actionDrag:
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case actionTouchDrag:
		h.InjectTouchDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case actionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case actionComplete:
		if w := r.widget(h, st); w != nil {
			w.ProgrammaticComplete()
		}
	case actionReset:
		if w := r.widget(h, st); w != nil {
			w.ProgrammaticReset()
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) widget(h *Host, st testStep) *Widget {
	if st.Widget < 0 || st.Widget >= len(h.widgets) {
		h.logf("test script: no widget %d", st.Widget)
		return nil
	}
	return h.widgets[st.Widget]
}
