package trellis

import (
	"encoding/json"
	"fmt"
)

// testStep is one entry of a JSON test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// scriptFrame is what a script does during one Update call. Frames without
// a pointer sample leave input to the inject queue or the host.
type scriptFrame struct {
	pointer    bool
	pos        Vec2
	down       bool
	screenshot string
}

// TestRunner replays a test script as a timeline of frames, one per
// Gui.Update call. Attach it with Gui.SetTestRunner.
//
// Script actions and the frames they take:
//
//	click      (x, y)                            2: press, release
//	hover      (x, y)                            1
//	drag       (fromX, fromY, toX, toY, frames)  frames, at least 2
//	wait       (frames)                          frames, at least 1
//	screenshot (label)                           1
type TestRunner struct {
	frames []scriptFrame
	next   int
}

// LoadTestScript parses a JSON test script and compiles it into frames.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("trellis: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("trellis: parse test script: no steps")
	}
	r := &TestRunner{}
	for i, st := range script.Steps {
		frames, err := compileStep(st)
		if err != nil {
			return nil, fmt.Errorf("trellis: parse test script: step %d: %w", i, err)
		}
		r.frames = append(r.frames, frames...)
	}
	return r, nil
}

func compileStep(st testStep) ([]scriptFrame, error) {
	at := func(x, y float64, down bool) scriptFrame {
		return scriptFrame{pointer: true, pos: Vec2{x, y}, down: down}
	}
	switch st.Action {
	case "click":
		return []scriptFrame{at(st.X, st.Y, true), at(st.X, st.Y, false)}, nil
	case "hover":
		return []scriptFrame{at(st.X, st.Y, false)}, nil
	case "drag":
		n := max(st.Frames, 2)
		frames := make([]scriptFrame, n)
		for i := range n {
			t := float64(i) / float64(n-1)
			frames[i] = at(st.FromX+(st.ToX-st.FromX)*t, st.FromY+(st.ToY-st.FromY)*t, i < n-1)
		}
		return frames, nil
	case "wait":
		return make([]scriptFrame, max(st.Frames, 1)), nil
	case "screenshot":
		return []scriptFrame{{screenshot: st.Label}}, nil
	}
	return nil, fmt.Errorf("unknown action %q", st.Action)
}

// SetTestRunner attaches a TestRunner, or detaches it when runner is nil.
// While the runner has frames left, each Update plays one of them.
func (g *Gui) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether every frame of the script has been played.
func (r *TestRunner) Done() bool {
	return r.next >= len(r.frames)
}

// Len returns the number of frames the script takes.
func (r *TestRunner) Len() int { return len(r.frames) }

// Remaining returns the number of frames left to play.
func (r *TestRunner) Remaining() int { return len(r.frames) - r.next }

// Reset rewinds the script to its first frame.
func (r *TestRunner) Reset() { r.next = 0 }

// scriptedSample plays the attached runner's next frame. ok is false when
// there is no runner, the script is over, or the frame carries no pointer
// sample.
func (g *Gui) scriptedSample() (pos Vec2, down ButtonsDown, ok bool) {
	r := g.testRunner
	if r == nil || r.Done() {
		return Vec2{}, ButtonsDown{}, false
	}
	f := r.frames[r.next]
	r.next++
	if f.screenshot != "" {
		g.Screenshot(f.screenshot)
	}
	return f.pos, ButtonsDown{Left: f.down}, f.pointer
}
