package trellis

import "fmt"

// EventType identifies the kind of interaction event.
type EventType uint8

const (
	EventClick EventType = iota // clickable widget pressed and released while hovered
	EventDrag                   // slider dragged; emitted every frame the button is held
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventDrag:
		return "drag"
	default:
		return fmt.Sprintf("event(%d)", uint8(t))
	}
}

// Event is a semantic interaction event. ActionID is the identifier set on
// the source widget with SetActionID.
type Event struct {
	Type     EventType
	Widget   WidgetID
	ActionID string
	// Drag fields (valid for EventDrag)
	Value      float64 // slider value under the pointer, in the slider's range
	Start      Vec2    // pointer position when the drag began
	InProgress bool    // false on the final event of a drag
}

// EventStore is the interface for optional ECS integration. When set on a
// Gui, drained events are forwarded to it.
type EventStore interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type handlerRegistry struct {
	click  []eventHandler
	drag   []eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id)
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	}
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnClick registers a callback for click events. Callbacks run inside
// DrainEvents, in queue order.
func (g *Gui) OnClick(fn func(Event)) CallbackHandle {
	g.handlers.nextID++
	id := g.handlers.nextID
	g.handlers.click = append(g.handlers.click, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &g.handlers, event: EventClick}
}

// OnDrag registers a callback for drag events. Callbacks run inside
// DrainEvents, in queue order.
func (g *Gui) OnDrag(fn func(Event)) CallbackHandle {
	g.handlers.nextID++
	id := g.handlers.nextID
	g.handlers.drag = append(g.handlers.drag, eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &g.handlers, event: EventDrag}
}

// --- Queue ---

func (g *Gui) emit(e Event) {
	g.events = append(g.events, e)
}

// PendingEvents returns the number of queued events.
func (g *Gui) PendingEvents() int {
	return len(g.events)
}

// DrainEvents returns every event queued since the previous drain and clears
// the queue. Registered callbacks and the EventStore receive each event
// before DrainEvents returns. Callbacks may mutate widgets; events they cause
// are queued for the next drain.
func (g *Gui) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	events := g.events
	g.events = nil
	for _, e := range events {
		g.dispatch(e)
	}
	return events
}

func (g *Gui) dispatch(e Event) {
	var hs []eventHandler
	switch e.Type {
	case EventClick:
		hs = g.handlers.click
	case EventDrag:
		hs = g.handlers.drag
	}
	for _, h := range hs {
		h.fn(e)
	}
	if g.store != nil {
		g.store.EmitEvent(e)
	}
}
