package trellis

import (
	"fmt"
	"iter"
)

// Widget is a handle to a node owned by a Gui. Handles are small values;
// copy them freely. Setters return the handle so calls can be chained, and
// a setter given the current value changes nothing, including dirty flags.
type Widget struct {
	gui *Gui
	id  WidgetID
}

// ID returns the widget's arena handle.
func (w Widget) ID() WidgetID { return w.id }

// Gui returns the owning Gui.
func (w Widget) Gui() *Gui { return w.gui }

// Kind returns the widget kind.
func (w Widget) Kind() WidgetKind { return w.node().kind }

func (w Widget) node() *node {
	if w.gui == nil {
		panic("trellis: use of zero Widget")
	}
	return w.gui.arena.get(w.id)
}

func (w Widget) invalidate(flag DirtyFlags) {
	w.gui.arena.invalidate(w.id, flag)
}

// mustBe panics when the widget is not one of kinds.
func (w Widget) mustBe(op string, kinds ...WidgetKind) *node {
	n := w.node()
	for _, k := range kinds {
		if n.kind == k {
			return n
		}
	}
	panic(fmt.Sprintf("trellis: %s on %s widget", op, n.kind))
}

// --- Tree ---

// AddChild appends child to w's children and returns child. Panics if w is
// not a container, the child already has a parent, or the edge would create
// a cycle.
func (w Widget) AddChild(child Widget) Widget {
	w.mustBe("AddChild", KindPane, KindVBox, KindHBox)
	if child.gui != w.gui {
		panic("trellis: child belongs to another gui")
	}
	w.gui.arena.addChild(w.id, child.id)
	if w.gui.debug {
		debugCheckTreeDepth(w.gui.arena, child.id)
		debugCheckChildCount(w.gui.arena, w.id)
	}
	return child
}

// Parent returns the widget's parent, if any.
func (w Widget) Parent() (Widget, bool) {
	p, ok := w.gui.arena.parentOf(w.id)
	if !ok {
		return Widget{}, false
	}
	return Widget{gui: w.gui, id: p}, true
}

// Children iterates over the widget's children in insertion order.
func (w Widget) Children() iter.Seq[Widget] {
	ids := w.gui.arena.children(w.id)
	return func(yield func(Widget) bool) {
		for id := range ids {
			if !yield(Widget{gui: w.gui, id: id}) {
				return
			}
		}
	}
}

// NumChildren returns the number of children.
func (w Widget) NumChildren() int { return len(w.node().children) }

// --- Geometry getters ---

// Rect returns the widget rectangle relative to the parent's origin.
func (w Widget) Rect() Rect { return w.node().rect }

// ContentRect returns the widget rectangle minus padding, relative to the
// parent's origin.
func (w Widget) ContentRect() Rect { return w.node().contentRect }

// AbsoluteRect returns the widget rectangle in root coordinates.
func (w Widget) AbsoluteRect() Rect {
	r := w.node().rect
	for p, ok := w.Parent(); ok; p, ok = p.Parent() {
		r = r.Offset(p.node().rect.Origin())
	}
	return r
}

// ComputedSize returns the cached preferred size, padding included.
func (w Widget) ComputedSize() Size { return w.node().computed }

// WidgetSize returns the size granted by the last content-size pass.
func (w Widget) WidgetSize() Size { return w.node().widgetSize }

// Dirty returns the widget's dirty flags.
func (w Widget) Dirty() DirtyFlags { return w.node().dirty }

// --- Interaction getters ---

// Hovered reports whether the pointer was inside the widget last update.
func (w Widget) Hovered() bool { return w.node().hovered }

// ChildHovered reports whether any child was hovered last update.
func (w Widget) ChildHovered() bool { return w.node().childHovered }

// Armed reports whether the widget was pressed and is waiting for release.
func (w Widget) Armed() bool { return w.node().armed }

// Dragging reports whether a slider drag is in progress.
func (w Widget) Dragging() bool { return w.node().dragging }

// --- Model setters ---

// SetPadding sets all four padding sides.
func (w Widget) SetPadding(p Padding) Widget {
	n := w.node()
	if n.padding == p {
		return w
	}
	n.padding = p
	w.invalidate(DirtyPreferredSize)
	return w
}

// SetPaddingAll sets the same padding on all four sides.
func (w Widget) SetPaddingAll(v float64) Widget {
	return w.SetPadding(UniformPadding(v))
}

// Padding returns the widget padding.
func (w Widget) Padding() Padding { return w.node().padding }

// SetPreferredWidth requests a width. The widget is never narrower than its
// measured content.
func (w Widget) SetPreferredWidth(v float64) Widget {
	return w.setPreferredWidth(Fixed(v))
}

// ClearPreferredWidth removes a requested width.
func (w Widget) ClearPreferredWidth() Widget {
	return w.setPreferredWidth(Dimension{})
}

func (w Widget) setPreferredWidth(d Dimension) Widget {
	n := w.node()
	if n.preferredW == d {
		return w
	}
	n.preferredW = d
	w.invalidate(DirtyPreferredSize)
	return w
}

// SetPreferredHeight requests a height. The widget is never shorter than its
// measured content.
func (w Widget) SetPreferredHeight(v float64) Widget {
	return w.setPreferredHeight(Fixed(v))
}

// ClearPreferredHeight removes a requested height.
func (w Widget) ClearPreferredHeight() Widget {
	return w.setPreferredHeight(Dimension{})
}

func (w Widget) setPreferredHeight(d Dimension) Widget {
	n := w.node()
	if n.preferredH == d {
		return w
	}
	n.preferredH = d
	w.invalidate(DirtyPreferredSize)
	return w
}

// PreferredWidth returns the requested width.
func (w Widget) PreferredWidth() Dimension { return w.node().preferredW }

// PreferredHeight returns the requested height.
func (w Widget) PreferredHeight() Dimension { return w.node().preferredH }

// EnableFillWidth makes the widget take the offered width, sharing it with
// filling siblings of an HBox by weight.
func (w Widget) EnableFillWidth(weight uint32) Widget {
	return w.setFillWidth(FillEnabled(weight))
}

// DisableFillWidth keeps the widget at its preferred width.
func (w Widget) DisableFillWidth() Widget {
	return w.setFillWidth(FillDisabled)
}

func (w Widget) setFillWidth(f Fill) Widget {
	n := w.node()
	if n.fillW == f {
		return w
	}
	n.fillW = f
	w.invalidate(DirtyPreferredSize)
	return w
}

// EnableFillHeight makes the widget take the offered height, sharing it with
// filling siblings of a VBox by weight.
func (w Widget) EnableFillHeight(weight uint32) Widget {
	return w.setFillHeight(FillEnabled(weight))
}

// DisableFillHeight keeps the widget at its preferred height.
func (w Widget) DisableFillHeight() Widget {
	return w.setFillHeight(FillDisabled)
}

func (w Widget) setFillHeight(f Fill) Widget {
	n := w.node()
	if n.fillH == f {
		return w
	}
	n.fillH = f
	w.invalidate(DirtyPreferredSize)
	return w
}

// FillWidth returns the horizontal fill policy.
func (w Widget) FillWidth() Fill { return w.node().fillW }

// FillHeight returns the vertical fill policy.
func (w Widget) FillHeight() Fill { return w.node().fillH }

// SetPosition sets the widget's target point inside its parent. Box
// containers stack their children and ignore it.
func (w Widget) SetPosition(x, y Coordinate) Widget {
	n := w.node()
	p := Position{X: x, Y: y}
	if n.position == p {
		return w
	}
	n.position = p
	w.positionChanged()
	return w
}

// Position returns the declared target point.
func (w Widget) Position() Position { return w.node().position }

// SetVAlignment sets which edge or center of the widget sits on the target y.
func (w Widget) SetVAlignment(a VAlignment) Widget {
	n := w.node()
	if n.alignment.Vertical == a {
		return w
	}
	n.alignment.Vertical = a
	w.positionChanged()
	return w
}

// SetHAlignment sets which edge or center of the widget sits on the target x.
func (w Widget) SetHAlignment(a HAlignment) Widget {
	n := w.node()
	if n.alignment.Horizontal == a {
		return w
	}
	n.alignment.Horizontal = a
	w.positionChanged()
	return w
}

// SetAlignment sets both anchors.
func (w Widget) SetAlignment(v VAlignment, h HAlignment) Widget {
	return w.SetVAlignment(v).SetHAlignment(h)
}

// Alignment returns the widget's anchors.
func (w Widget) Alignment() Alignment { return w.node().alignment }

// positionChanged dirties POSITION on the widget. A Pane parent measures
// its children's positions, so its preferred size is dirtied too.
func (w Widget) positionChanged() {
	w.invalidate(DirtyPosition)
	if p, ok := w.Parent(); ok && p.node().kind == KindPane {
		p.invalidate(DirtyPreferredSize)
	}
}

// SetTextStyle sets the name of the text style used to measure and draw text.
func (w Widget) SetTextStyle(name string) Widget {
	n := w.node()
	if n.textStyle == name {
		return w
	}
	n.textStyle = name
	w.invalidate(DirtyStyle)
	return w
}

// SetBackgroundStyle sets the name of the background style.
func (w Widget) SetBackgroundStyle(name string) Widget {
	n := w.node()
	if n.background == name {
		return w
	}
	n.background = name
	w.invalidate(DirtyStyle)
	return w
}

// SetBorderStyle sets the name of the border style.
func (w Widget) SetBorderStyle(name string) Widget {
	n := w.node()
	if n.border == name {
		return w
	}
	n.border = name
	w.invalidate(DirtyStyle)
	return w
}

// TextStyle returns the text style name.
func (w Widget) TextStyle() string { return w.node().textStyle }

// BackgroundStyle returns the background style name.
func (w Widget) BackgroundStyle() string { return w.node().background }

// BorderStyle returns the border style name.
func (w Widget) BorderStyle() string { return w.node().border }

// SetActionID sets the identifier carried by events from this widget.
func (w Widget) SetActionID(id string) Widget {
	w.node().actionID = id
	return w
}

// ActionID returns the event identifier.
func (w Widget) ActionID() string { return w.node().actionID }

// SetClickable enables Click events for the widget.
func (w Widget) SetClickable(c bool) Widget {
	n := w.node()
	n.clickable = c
	if !c {
		n.armed = false
	}
	return w
}

// Clickable reports whether the widget emits Click events.
func (w Widget) Clickable() bool { return w.node().clickable }

// --- Kind-specific ---

// SetText sets a label's text.
func (w Widget) SetText(text string) Widget {
	n := w.mustBe("SetText", KindLabel)
	if n.text == text {
		return w
	}
	n.text = text
	w.invalidate(DirtyPreferredSize)
	return w
}

// Text returns a label's text or a slider's formatted value.
func (w Widget) Text() string {
	n := w.mustBe("Text", KindLabel, KindSlider)
	if n.kind == KindSlider {
		return formatSliderValue(n.value)
	}
	return n.text
}

// SetSpacing sets the gap between consecutive children of a box.
func (w Widget) SetSpacing(v float64) Widget {
	n := w.mustBe("SetSpacing", KindVBox, KindHBox)
	if n.spacing == v {
		return w
	}
	n.spacing = v
	w.invalidate(DirtyPreferredSize)
	return w
}

// Spacing returns the gap between consecutive children of a box.
func (w Widget) Spacing() float64 {
	return w.mustBe("Spacing", KindVBox, KindHBox).spacing
}

// SetValue sets a slider's value. The value is not clamped to the range;
// the cursor is.
func (w Widget) SetValue(v float64) Widget {
	n := w.mustBe("SetValue", KindSlider)
	if n.value == v {
		return w
	}
	n.value = v
	w.invalidate(DirtyPreferredSize)
	return w
}

// SetRange sets a slider's minimum and maximum values.
func (w Widget) SetRange(lo, hi float64) Widget {
	n := w.mustBe("SetRange", KindSlider)
	if n.valueMin == lo && n.valueMax == hi {
		return w
	}
	n.valueMin, n.valueMax = lo, hi
	w.invalidate(DirtyPreferredSize)
	return w
}

// Value returns a slider's value.
func (w Widget) Value() float64 { return w.mustBe("Value", KindSlider).value }

// Min returns a slider's minimum value.
func (w Widget) Min() float64 { return w.mustBe("Min", KindSlider).valueMin }

// Max returns a slider's maximum value.
func (w Widget) Max() float64 { return w.mustBe("Max", KindSlider).valueMax }
