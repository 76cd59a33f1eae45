package trellis

import "slices"

// ButtonState is the per-frame state of one mouse button.
type ButtonState struct {
	Down     bool // held this frame
	Up       bool // not held this frame
	Pressed  bool // went down since the previous frame
	Released bool // went up since the previous frame
}

// MouseState holds the state of the three mouse buttons for one frame.
type MouseState struct {
	Left   ButtonState
	Middle ButtonState
	Right  ButtonState
}

// ButtonsDown is a raw sample of which buttons are held.
type ButtonsDown struct {
	Left, Middle, Right bool
}

// PointerSampler reads the host pointer once per frame.
type PointerSampler interface {
	SamplePointer() (pos Vec2, down ButtonsDown)
}

// ButtonTracker derives pressed and released edges from consecutive raw
// samples. The zero value assumes every button starts up.
type ButtonTracker struct {
	prev ButtonsDown
}

// Next returns the MouseState for this frame's sample and remembers it.
func (t *ButtonTracker) Next(down ButtonsDown) MouseState {
	ms := MouseState{
		Left:   buttonEdge(t.prev.Left, down.Left),
		Middle: buttonEdge(t.prev.Middle, down.Middle),
		Right:  buttonEdge(t.prev.Right, down.Right),
	}
	t.prev = down
	return ms
}

func buttonEdge(was, is bool) ButtonState {
	return ButtonState{
		Down:     is,
		Up:       !is,
		Pressed:  is && !was,
		Released: !is && was,
	}
}

// UpdateInteraction runs hover, armed, click and drag resolution for one
// frame. pos is the pointer in root coordinates; only the left button
// interacts.
//
// Hover is resolved top-down: a widget is hovered when its parent is hovered
// and the pointer is inside its rectangle. Presses are resolved bottom-up:
// the innermost hovered widget that can take a press (a clickable widget or
// a slider) claims it, and its ancestors do not arm.
func (g *Gui) UpdateInteraction(pos Vec2, mouse MouseState) {
	g.mouse = pos
	g.mouseOK = true
	if g.arena.root.IsZero() {
		return
	}
	g.interact(g.arena.root, Vec2{}, true, pos, mouse.Left, false)
}

// MousePosition returns the pointer position of the last interaction update.
func (g *Gui) MousePosition() (Vec2, bool) {
	return g.mouse, g.mouseOK
}

// interact updates one node and its subtree. claimed reports whether an
// earlier sibling subtree already took this frame's press; the result says
// whether the press is taken once this subtree is done.
func (g *Gui) interact(id WidgetID, offset Vec2, parentHovered bool, p Vec2, btn ButtonState, claimed bool) (bool, bool) {
	n := g.arena.get(id)
	r := n.rect.Offset(offset)
	n.hovered = parentHovered && r.Contains(p.X, p.Y)

	// Children are visited even when the node is not hovered so that armed
	// and dragging state is cleared or carried outside the rectangle.
	childOffset := offset.Add(n.rect.Origin())
	n.childHovered = false
	// Reverse paint order: the sibling drawn on top gets the press first.
	for _, c := range slices.Backward(n.children) {
		var h bool
		h, claimed = g.interact(c, childOffset, n.hovered, p, btn, claimed)
		n.childHovered = n.childHovered || h
	}

	if btn.Pressed && n.hovered && !claimed {
		switch {
		case n.kind == KindSlider:
			n.dragging = true
			n.dragStart = p
			claimed = true
		case n.clickable:
			n.armed = true
			claimed = true
		}
	}

	if n.armed {
		switch {
		case !n.hovered:
			n.armed = false
		case btn.Released:
			n.armed = false
			g.emit(Event{Type: EventClick, Widget: id, ActionID: n.actionID})
		case !btn.Down:
			n.armed = false
		}
	}

	if n.dragging {
		v := sliderValueAt(p.X, n.contentRect.Offset(offset), n.valueMin, n.valueMax)
		if btn.Down {
			g.emit(Event{Type: EventDrag, Widget: id, ActionID: n.actionID, Value: v, Start: n.dragStart, InProgress: true})
		} else {
			n.dragging = false
			g.emit(Event{Type: EventDrag, Widget: id, ActionID: n.actionID, Value: v, Start: n.dragStart})
		}
	}
	return n.hovered, claimed
}
