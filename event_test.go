package trellis

import "testing"

type recordingStore struct {
	events []Event
}

func (s *recordingStore) EmitEvent(e Event) { s.events = append(s.events, e) }

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventClick, "click"},
		{EventDrag, "drag"},
		{EventType(9), "event(9)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDrainEventsDispatch(t *testing.T) {
	g := NewGui()
	store := &recordingStore{}
	g.SetEntityStore(store)

	var order []string
	g.OnClick(func(e Event) { order = append(order, "click:"+e.ActionID) })
	g.OnDrag(func(e Event) { order = append(order, "drag:"+e.ActionID) })

	g.emit(Event{Type: EventClick, ActionID: "a"})
	g.emit(Event{Type: EventDrag, ActionID: "b"})
	g.emit(Event{Type: EventClick, ActionID: "c"})

	if g.PendingEvents() != 3 {
		t.Fatalf("pending = %d, want 3", g.PendingEvents())
	}
	if len(order) != 0 {
		t.Fatal("handlers ran before drain")
	}

	events := g.DrainEvents()
	if len(events) != 3 {
		t.Fatalf("drained %d, want 3", len(events))
	}
	want := []string{"click:a", "drag:b", "click:c"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
	if len(store.events) != 3 || store.events[1].ActionID != "b" {
		t.Errorf("store got %+v", store.events)
	}
	if g.PendingEvents() != 0 {
		t.Error("queue not cleared")
	}
	if g.DrainEvents() != nil {
		t.Error("second drain should return nil")
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	g := NewGui()
	var a, b int
	ha := g.OnClick(func(Event) { a++ })
	g.OnClick(func(Event) { b++ })

	g.emit(Event{Type: EventClick})
	g.DrainEvents()
	ha.Remove()
	ha.Remove()
	g.emit(Event{Type: EventClick})
	g.DrainEvents()

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1 2", a, b)
	}
	CallbackHandle{}.Remove()
}

func TestHandlerEventsQueueForNextDrain(t *testing.T) {
	g := NewGui()
	g.OnClick(func(e Event) {
		if e.ActionID == "first" {
			g.emit(Event{Type: EventClick, ActionID: "second"})
		}
	})

	g.emit(Event{Type: EventClick, ActionID: "first"})
	if n := len(g.DrainEvents()); n != 1 {
		t.Fatalf("first drain = %d, want 1", n)
	}
	events := g.DrainEvents()
	if len(events) != 1 || events[0].ActionID != "second" {
		t.Errorf("second drain = %+v", events)
	}
}

func TestHandlerMutationAppliesNextLayout(t *testing.T) {
	g := newTextGui(t)
	root := g.SetRoot(g.NewVBox())
	label := root.AddChild(g.NewLabel("0"))
	btn := root.AddChild(g.NewButton("+", "inc"))
	g.Layout(Size{Width: 300, Height: 300})

	g.OnClick(func(e Event) {
		if e.ActionID == "inc" {
			label.SetText("100")
		}
	})

	r := btn.Rect()
	g.InjectClick(r.X+1, r.Y+1)
	g.Frame(nil, Size{Width: 300, Height: 300})
	g.Frame(nil, Size{Width: 300, Height: 300})
	if label.Dirty() == 0 {
		t.Fatal("handler mutation should leave the label dirty until the next layout")
	}
	g.Layout(Size{Width: 300, Height: 300})
	if got := label.Rect().Width; got != 30 {
		t.Errorf("label width = %v, want 30", got)
	}
}
