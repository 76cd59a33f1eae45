package trellis

const (
	defaultBoxSpacing = 10.0
	defaultSliderMin  = 0.0
	defaultSliderMax  = 100.0
	defaultSliderVal  = 50.0
)

// Gui is the top-level object that owns the widget arena, the style
// registry, interaction state and the event queue.
//
// A frame runs, in order: Update (or UpdateInteraction), Layout, Render,
// DrainEvents. Every method must be called from the same goroutine.
type Gui struct {
	arena  *arena
	styles *StyleRegistry
	debug  bool

	// Interaction
	buttons ButtonTracker
	mouse   Vec2
	mouseOK bool

	// Events
	events   []Event
	handlers handlerRegistry
	store    EventStore

	// Layout
	stats frameStats

	// Scripted input
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewGui creates an empty Gui with an empty style registry.
func NewGui() *Gui {
	g := &Gui{
		arena:  newArena(),
		styles: NewStyleRegistry(),
	}
	g.styles.onChange = g.styleChanged
	return g
}

// Styles returns the Gui's style registry.
func (g *Gui) Styles() *StyleRegistry {
	return g.styles
}

// Len returns the number of widgets created, attached or not.
func (g *Gui) Len() int {
	return len(g.arena.nodes)
}

// Widget returns the handle for id. Panics if id does not belong to g.
func (g *Gui) Widget(id WidgetID) Widget {
	g.arena.get(id)
	return Widget{gui: g, id: id}
}

// Root returns the tree root, if one was set.
func (g *Gui) Root() (Widget, bool) {
	if g.arena.root.IsZero() {
		return Widget{}, false
	}
	return Widget{gui: g, id: g.arena.root}, true
}

// SetRoot makes w the tree root. Panics if a root exists or w has a parent.
func (g *Gui) SetRoot(w Widget) Widget {
	if w.gui != g {
		panic("trellis: root belongs to another gui")
	}
	g.arena.insertRoot(w.id)
	return w
}

func (g *Gui) newWidget(kind WidgetKind) Widget {
	id := g.arena.insert(kind)
	n := g.arena.get(id)
	n.textStyle = DefaultStyleName
	n.background = DefaultStyleName
	n.border = DefaultStyleName
	return Widget{gui: g, id: id}
}

// NewPane creates a detached free-form container.
func (g *Gui) NewPane() Widget {
	return g.newWidget(KindPane)
}

// NewVBox creates a detached vertical box.
func (g *Gui) NewVBox() Widget {
	w := g.newWidget(KindVBox)
	w.node().spacing = defaultBoxSpacing
	return w
}

// NewHBox creates a detached horizontal box.
func (g *Gui) NewHBox() Widget {
	w := g.newWidget(KindHBox)
	w.node().spacing = defaultBoxSpacing
	return w
}

// NewLabel creates a detached label showing text.
func (g *Gui) NewLabel(text string) Widget {
	w := g.newWidget(KindLabel)
	w.node().text = text
	return w
}

// NewButton creates a detached clickable label.
func (g *Gui) NewButton(text, actionID string) Widget {
	return g.NewLabel(text).SetClickable(true).SetActionID(actionID)
}

// NewSlider creates a detached slider with value 50 in [0, 100].
func (g *Gui) NewSlider() Widget {
	w := g.newWidget(KindSlider)
	n := w.node()
	n.valueMin = defaultSliderMin
	n.valueMax = defaultSliderMax
	n.value = defaultSliderVal
	return w
}

// SetEntityStore sets the optional ECS bridge. Drained events are forwarded
// to it after the registered handlers run.
func (g *Gui) SetEntityStore(store EventStore) {
	g.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are printed, and per-frame layout stats are logged to
// stderr.
func (g *Gui) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// Update samples the pointer and runs interaction for one frame. The
// attached test runner's frame comes first, then a queued synthetic event,
// then the host sampler.
func (g *Gui) Update(sampler PointerSampler) {
	pos, down, ok := g.scriptedSample()
	if !ok {
		pos, down, ok = g.popInjected()
	}
	if !ok {
		if sampler == nil {
			return
		}
		pos, down = sampler.SamplePointer()
	}
	g.UpdateInteraction(pos, g.buttons.Next(down))
}

// Frame runs Update, Layout and DrainEvents for a host that renders
// separately.
func (g *Gui) Frame(sampler PointerSampler, available Size) []Event {
	g.Update(sampler)
	g.Layout(available)
	return g.DrainEvents()
}

// Screenshot queues a labeled screenshot. Backends capture every queued
// label after rendering and clear the queue with TakeScreenshots.
func (g *Gui) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// TakeScreenshots returns the queued screenshot labels and clears the queue.
func (g *Gui) TakeScreenshots() []string {
	if len(g.screenshotQueue) == 0 {
		return nil
	}
	labels := g.screenshotQueue
	g.screenshotQueue = nil
	return labels
}

// styleChanged dirties STYLE on every widget that references the changed
// registry entry. A font change affects widgets whose text style uses it.
func (g *Gui) styleChanged(kind styleKind, name string) {
	for i := range g.arena.nodes {
		n := &g.arena.nodes[i]
		var hit bool
		switch kind {
		case styleKindText:
			hit = n.textStyle == name
		case styleKindBackground:
			hit = n.background == name
		case styleKindBorder:
			hit = n.border == name
		case styleKindFont:
			s, ok := g.styles.textStyles[n.textStyle]
			hit = ok && s.Font == name
		}
		if hit {
			g.arena.invalidate(n.id, DirtyStyle)
		}
	}
}
