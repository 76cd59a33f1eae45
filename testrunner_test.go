package trellis

import (
	"strings"
	"testing"
)

func loadScript(t *testing.T, data string) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return runner
}

func TestLoadTestScript(t *testing.T) {
	runner := loadScript(t, `{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "hover", "x": 5, "y": 6},
			{"action": "drag", "fromX": 0, "fromY": 0, "toX": 10, "toY": 0, "frames": 4},
			{"action": "wait"}
		]
	}`)
	// 1 + 2 + 3 + 1 + 4 + 1
	if runner.Len() != 12 || runner.Remaining() != 12 {
		t.Fatalf("len=%d remaining=%d, want 12", runner.Len(), runner.Remaining())
	}
	if f := runner.frames[0]; f.pointer || f.screenshot != "initial" {
		t.Errorf("frame 0 = %+v", f)
	}
	if f := runner.frames[1]; !f.pointer || !f.down || f.pos != (Vec2{100, 200}) {
		t.Errorf("frame 1 = %+v, want press at (100, 200)", f)
	}
	if f := runner.frames[2]; !f.pointer || f.down {
		t.Errorf("frame 2 = %+v, want release", f)
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "wait"}, {"action": "scroll"}]}`, `step 1: unknown action "scroll"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCompileDrag(t *testing.T) {
	tests := []struct {
		frames int
		wantX  []float64
	}{
		{4, []float64{0, 30, 60, 90}},
		{0, []float64{0, 90}},
		{1, []float64{0, 90}},
	}
	for _, tt := range tests {
		frames, err := compileStep(testStep{Action: "drag", ToX: 90, ToY: 9, Frames: tt.frames})
		if err != nil {
			t.Fatal(err)
		}
		if len(frames) != len(tt.wantX) {
			t.Fatalf("frames=%d: got %d frames, want %d", tt.frames, len(frames), len(tt.wantX))
		}
		for i, f := range frames {
			last := i == len(frames)-1
			if !approx(f.pos.X, tt.wantX[i]) || f.down == last || !f.pointer {
				t.Errorf("frames=%d: frame %d = %+v", tt.frames, i, f)
			}
		}
		if end := frames[len(frames)-1].pos; end != (Vec2{90, 9}) {
			t.Errorf("frames=%d: drag ends at %+v", tt.frames, end)
		}
	}
}

func TestRunnerClick(t *testing.T) {
	g, _, btn := buttonScene(t)
	runner := loadScript(t, `{"steps": [{"action": "click", "x": 20, "y": 15}]}`)
	g.SetTestRunner(runner)

	g.Update(nil)
	if !btn.Armed() || runner.Done() {
		t.Fatalf("after press: armed=%v done=%v", btn.Armed(), runner.Done())
	}
	g.Update(nil)
	if !runner.Done() {
		t.Error("runner should be done after the release frame")
	}
	events := g.DrainEvents()
	if len(events) != 1 || events[0].ActionID != "ok" {
		t.Errorf("events = %+v, want one click", events)
	}
}

func TestRunnerWaitAndScreenshot(t *testing.T) {
	g := NewGui()
	g.SetTestRunner(loadScript(t, `{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))

	for i := range 3 {
		g.Update(nil)
		if labels := g.TakeScreenshots(); labels != nil {
			t.Fatalf("frame %d: screenshot %v during wait", i, labels)
		}
	}
	g.Update(nil)
	labels := g.TakeScreenshots()
	if len(labels) != 1 || labels[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", labels)
	}
	if !g.testRunner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerDrag(t *testing.T) {
	g := NewGui()
	slider := g.SetRoot(g.NewSlider().SetActionID("vol"))
	g.Layout(Size{Width: 500, Height: 500})
	g.SetTestRunner(loadScript(t, `{"steps": [
		{"action": "drag", "fromX": 2.5, "fromY": 10, "toX": 97.5, "toY": 10, "frames": 5}
	]}`))

	for range 5 {
		g.Update(nil)
	}
	if slider.Dragging() {
		t.Error("drag did not end")
	}
	events := g.DrainEvents()
	want := []float64{0, 25, 50, 75, 100}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if !approx(e.Value, want[i]) || e.InProgress != (i < len(want)-1) {
			t.Errorf("event %d: value=%v in progress=%v", i, e.Value, e.InProgress)
		}
	}
}

func TestRunnerWaitLetsInjectionsThrough(t *testing.T) {
	g, _, btn := buttonScene(t)
	g.SetTestRunner(loadScript(t, `{"steps": [{"action": "wait", "frames": 2}]}`))
	g.InjectClick(20, 15)

	g.Update(nil)
	if !btn.Armed() {
		t.Fatal("injected press not applied during a wait frame")
	}
	g.Update(nil)
	if g.PendingInjections() != 0 || len(g.DrainEvents()) != 1 {
		t.Error("injected click did not complete during the wait")
	}
}

func TestRunnerOverridesInjectionsAndHost(t *testing.T) {
	g, _, btn := buttonScene(t)
	g.SetTestRunner(loadScript(t, `{"steps": [{"action": "hover", "x": 20, "y": 15}]}`))
	g.InjectHover(150, 150)
	host := &fixedSampler{pos: Vec2{190, 190}}

	g.Update(host)
	if !btn.Hovered() {
		t.Error("scripted hover not applied")
	}
	if g.PendingInjections() != 1 {
		t.Errorf("injection consumed during a scripted frame")
	}
	g.Update(host)
	if btn.Hovered() {
		t.Error("injected sample should follow once the script is done")
	}
}

func TestRunnerReset(t *testing.T) {
	g := NewGui()
	runner := loadScript(t, `{"steps": [{"action": "screenshot", "label": "only"}]}`)
	g.SetTestRunner(runner)

	g.Update(nil)
	g.Update(nil)
	if n := len(g.TakeScreenshots()); n != 1 {
		t.Errorf("screenshots = %d, want 1", n)
	}
	runner.Reset()
	if runner.Done() || runner.Remaining() != 1 {
		t.Fatalf("after reset: done=%v remaining=%d", runner.Done(), runner.Remaining())
	}
	g.Update(nil)
	if n := len(g.TakeScreenshots()); n != 1 {
		t.Errorf("screenshots after reset = %d, want 1", n)
	}
}
