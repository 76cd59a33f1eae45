package trellis

import "strings"

// DirtyFlags records which cached values of a node may be stale. Flags are
// ordered coarsest to finest; setting one implies every finer flag.
type DirtyFlags uint8

const (
	DirtyStyle         DirtyFlags = 1 << iota // resolved styles
	DirtyPreferredSize                        // computed (preferred) size
	DirtyContentSize                          // size granted by the parent
	DirtyPosition                             // widget and content rectangles

	DirtyAll = DirtyStyle | DirtyPreferredSize | DirtyContentSize | DirtyPosition
)

// implied returns f together with every finer flag.
func (f DirtyFlags) implied() DirtyFlags {
	switch {
	case f&DirtyStyle != 0:
		return DirtyAll
	case f&DirtyPreferredSize != 0:
		return DirtyPreferredSize | DirtyContentSize | DirtyPosition
	case f&DirtyContentSize != 0:
		return DirtyContentSize | DirtyPosition
	default:
		return f & DirtyPosition
	}
}

// Has reports whether every bit of o is set in f.
func (f DirtyFlags) Has(o DirtyFlags) bool {
	return f&o == o
}

// String lists the set flags, e.g. "style|position".
func (f DirtyFlags) String() string {
	if f == 0 {
		return "clean"
	}
	var parts []string
	if f&DirtyStyle != 0 {
		parts = append(parts, "style")
	}
	if f&DirtyPreferredSize != 0 {
		parts = append(parts, "preferred")
	}
	if f&DirtyContentSize != 0 {
		parts = append(parts, "content")
	}
	if f&DirtyPosition != 0 {
		parts = append(parts, "position")
	}
	return strings.Join(parts, "|")
}

// invalidate marks flag dirty on id and walks up the parent chain with the
// same flag. The walk stops at the first node that already has flag set.
// Returns the number of nodes touched.
func (a *arena) invalidate(id WidgetID, flag DirtyFlags) int {
	touched := 0
	for cur := id; !cur.IsZero(); {
		n := a.get(cur)
		if n.dirty.Has(flag) {
			break
		}
		n.dirty |= flag.implied()
		touched++
		cur = n.parent
	}
	return touched
}

// clear removes flag from id without touching finer flags.
func (a *arena) clear(id WidgetID, flag DirtyFlags) {
	a.get(id).dirty &^= flag
}
