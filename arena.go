package trellis

import (
	"fmt"
	"iter"
)

// WidgetKind selects layout and rendering behavior for a widget node.
type WidgetKind uint8

const (
	KindPane   WidgetKind = iota // free-form container, children keep their declared positions
	KindVBox                     // stacks children top to bottom
	KindHBox                     // stacks children left to right
	KindLabel                    // single line of text
	KindSlider                   // value track with a draggable cursor
)

// String returns the lower-case kind name.
func (k WidgetKind) String() string {
	switch k {
	case KindPane:
		return "pane"
	case KindVBox:
		return "vbox"
	case KindHBox:
		return "hbox"
	case KindLabel:
		return "label"
	case KindSlider:
		return "slider"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// isContainer reports whether the kind lays out children.
func (k WidgetKind) isContainer() bool {
	return k == KindPane || k == KindVBox || k == KindHBox
}

// WidgetID is a stable handle to a node in a Gui's arena. The zero value
// refers to no widget. IDs are never reused while the Gui is alive.
type WidgetID struct {
	arena uint32
	slot  uint32 // index+1
}

// IsZero reports whether id refers to no widget.
func (id WidgetID) IsZero() bool {
	return id.slot == 0
}

// String formats the id for debug output.
func (id WidgetID) String() string {
	if id.IsZero() {
		return "widget(none)"
	}
	return fmt.Sprintf("widget(%d:%d)", id.arena, id.slot-1)
}

// arenaCounter is a plain counter (no atomic, trellis is single-threaded).
var arenaCounter uint32

// node is the arena element. A single flat struct is used for all widget
// kinds; kind-specific behavior is selected with a switch on kind.
type node struct {
	id       WidgetID
	kind     WidgetKind
	parent   WidgetID
	children []WidgetID

	// Model (builder input)
	preferredW Dimension
	preferredH Dimension
	padding    Padding
	position   Position
	alignment  Alignment
	fillW      Fill
	fillH      Fill
	textStyle  string
	background string
	border     string
	clickable  bool
	actionID   string

	// Kind-specific model
	text     string  // KindLabel
	spacing  float64 // KindVBox, KindHBox
	value    float64 // KindSlider
	valueMin float64
	valueMax float64

	// Geometry (cached)
	computed     Size // preferred size including padding
	widgetSize   Size // size granted by the parent
	refAvailable Size // available space used for the last content pass
	hasRef       bool
	rect         Rect // parent-relative widget rectangle
	contentRect  Rect // rect minus padding
	textSize     Size // measured label or slider value text

	// State
	dirty         DirtyFlags
	resolvedText  *resolvedTextStyle
	resolvedBack  *Background
	resolvedFrame *Border
	hovered       bool
	childHovered  bool
	armed         bool
	dragging      bool
	dragStart     Vec2
}

// arena owns every node of a Gui. Nodes are stored by value and addressed by
// slot; pointers returned by get stay valid only until the next insert.
type arena struct {
	serial uint32
	nodes  []node
	root   WidgetID
}

func newArena() *arena {
	arenaCounter++
	return &arena{serial: arenaCounter}
}

// insert appends a detached node of the given kind and returns its id.
func (a *arena) insert(kind WidgetKind) WidgetID {
	id := WidgetID{arena: a.serial, slot: uint32(len(a.nodes) + 1)}
	a.nodes = append(a.nodes, node{id: id, kind: kind, dirty: DirtyAll})
	return id
}

// get returns the node for id. Panics on a zero, foreign, or out-of-range id.
func (a *arena) get(id WidgetID) *node {
	if id.IsZero() {
		panic("trellis: zero widget id")
	}
	if id.arena != a.serial {
		panic(fmt.Sprintf("trellis: %s belongs to another gui", id))
	}
	if int(id.slot) > len(a.nodes) {
		panic(fmt.Sprintf("trellis: %s out of range", id))
	}
	return &a.nodes[id.slot-1]
}

// insertRoot makes id the tree root. Panics if a root already exists or if
// id is attached to a parent.
func (a *arena) insertRoot(id WidgetID) WidgetID {
	n := a.get(id)
	if !a.root.IsZero() {
		panic("trellis: gui already has a root")
	}
	if !n.parent.IsZero() {
		panic(fmt.Sprintf("trellis: %s already has a parent", id))
	}
	a.root = id
	return id
}

// addChild appends child to parent's children. Panics if the child is
// already attached, is the root, or is an ancestor of parent (cycle).
func (a *arena) addChild(parent, child WidgetID) WidgetID {
	p := a.get(parent)
	c := a.get(child)
	if !c.parent.IsZero() {
		panic(fmt.Sprintf("trellis: %s already has a parent", child))
	}
	if child == a.root {
		panic("trellis: cannot add the root as a child")
	}
	if a.isAncestor(child, parent) {
		panic("trellis: adding child would create a cycle")
	}
	c.parent = parent
	p.children = append(p.children, child)
	a.invalidate(parent, DirtyPreferredSize)
	return child
}

// parentOf returns the parent of id, if any.
func (a *arena) parentOf(id WidgetID) (WidgetID, bool) {
	p := a.get(id).parent
	return p, !p.IsZero()
}

// children iterates over id's children in insertion order.
func (a *arena) children(id WidgetID) iter.Seq[WidgetID] {
	kids := a.get(id).children
	return func(yield func(WidgetID) bool) {
		for _, c := range kids {
			if !yield(c) {
				return
			}
		}
	}
}

// isAncestor reports whether candidate is id or one of its ancestors.
func (a *arena) isAncestor(candidate, id WidgetID) bool {
	for p := id; !p.IsZero(); p = a.get(p).parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// depth returns the number of nodes from id up to its tree root, inclusive.
func (a *arena) depth(id WidgetID) int {
	d := 0
	for p := id; !p.IsZero(); p = a.get(p).parent {
		d++
	}
	return d
}
