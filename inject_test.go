package trellis

import "testing"

func TestInjectClick(t *testing.T) {
	g, _, btn := buttonScene(t)

	var clicked bool
	g.OnClick(func(e Event) {
		clicked = true
		if e.Widget != btn.ID() {
			t.Error("expected button widget")
		}
	})

	g.InjectClick(20, 15)
	if g.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", g.PendingInjections())
	}

	// Frame 1: press
	g.Update(nil)
	g.DrainEvents()
	if g.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", g.PendingInjections())
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}
	if !btn.Armed() {
		t.Error("button should be armed after the press frame")
	}

	// Frame 2: release, click fires
	g.Update(nil)
	g.DrainEvents()
	if g.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", g.PendingInjections())
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectDrag(t *testing.T) {
	g := NewGui()
	g.SetRoot(g.NewSlider().SetActionID("s"))
	g.Layout(Size{Width: 500, Height: 500})

	var values []float64
	var final int
	g.OnDrag(func(e Event) {
		values = append(values, e.Value)
		if !e.InProgress {
			final++
		}
	})

	// frame 0: press at 2.5
	// frames 1-3: moves to 26.25, 50, 73.75
	// frame 4: release at 97.5
	g.InjectDrag(2.5, 10, 97.5, 10, 5)
	if g.PendingInjections() != 5 {
		t.Fatalf("expected 5 queued events, got %d", g.PendingInjections())
	}
	for range 5 {
		g.Update(nil)
	}
	g.DrainEvents()

	want := []float64{0, 25, 50, 75, 100}
	if len(values) != len(want) {
		t.Fatalf("got %d drag events, want %d", len(values), len(want))
	}
	for i := range want {
		if !approx(values[i], want[i]) {
			t.Errorf("event %d value = %v, want %v", i, values[i], want[i])
		}
	}
	if final != 1 {
		t.Errorf("final events = %d, want 1", final)
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	g := NewGui()
	g.InjectDrag(0, 0, 100, 100, 1) // should clamp to 2
	if g.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", g.PendingInjections())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	g := NewGui()

	g.InjectPress(10, 20)
	g.InjectMove(30, 40)
	g.InjectHover(35, 45)
	g.InjectRelease(50, 60)

	want := []struct {
		pos  Vec2
		down bool
	}{
		{Vec2{10, 20}, true},
		{Vec2{30, 40}, true},
		{Vec2{35, 45}, false},
		{Vec2{50, 60}, false},
	}
	for i, w := range want {
		pos, down, ok := g.popInjected()
		if !ok {
			t.Fatalf("event %d: queue empty", i)
		}
		if pos != w.pos || down.Left != w.down {
			t.Errorf("event %d = %v down=%v, want %v down=%v", i, pos, down.Left, w.pos, w.down)
		}
	}
	if _, _, ok := g.popInjected(); ok {
		t.Error("queue should be empty")
	}
}

type fixedSampler struct {
	pos   Vec2
	down  bool
	calls int
}

func (s *fixedSampler) SamplePointer() (Vec2, ButtonsDown) {
	s.calls++
	return s.pos, ButtonsDown{Left: s.down}
}

func TestInjectedSampleReplacesHost(t *testing.T) {
	g, _, btn := buttonScene(t)
	host := &fixedSampler{pos: Vec2{150, 150}}

	g.InjectHover(20, 15)
	g.Update(host)
	if host.calls != 0 {
		t.Error("host sampled while an injected event was queued")
	}
	if !btn.Hovered() {
		t.Error("injected hover did not reach the button")
	}

	g.Update(host)
	if host.calls != 1 {
		t.Errorf("host calls = %d, want 1", host.calls)
	}
	if btn.Hovered() {
		t.Error("host sample should have moved the pointer off the button")
	}
}
