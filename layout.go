package trellis

import "time"

// Layout brings every cached size and rectangle of the tree up to date for
// the given space offered to the root. It runs four passes: style
// resolution, preferred size (bottom-up, memoized), content size (top-down,
// keyed on the offered space) and positions (top-down, dirty nodes only).
// Calling Layout twice with the same size and no mutation in between
// recomputes nothing.
func (g *Gui) Layout(available Size) {
	root := g.arena.root
	if root.IsZero() {
		return
	}
	g.stats = frameStats{}

	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	g.resolveStyles(root)
	g.computedSize(root)
	g.updateContentSize(root, available)
	if n := g.arena.get(root); n.dirty&DirtyPosition != 0 {
		target := n.position.Resolve(available)
		setOrigin(n, target.Sub(n.alignment.Shift(n.widgetSize)))
	}
	g.updatePositions(root)

	if g.debug {
		g.stats.layoutTime = time.Since(t0)
		g.debugLog()
	}
}

// resolveStyles walks the whole tree and re-resolves the styles of every
// STYLE-dirty node. A resolved style may change measured content, so the
// node's preferred size is invalidated.
func (g *Gui) resolveStyles(id WidgetID) {
	n := g.arena.get(id)
	if n.dirty&DirtyStyle != 0 {
		n.resolvedText = g.styles.resolveText(n.textStyle)
		n.resolvedBack = g.styles.resolveBackground(n.background)
		n.resolvedFrame = g.styles.resolveBorder(n.border)
		g.arena.clear(id, DirtyStyle)
		g.arena.invalidate(id, DirtyPreferredSize)
		g.stats.styles++
	}
	for _, c := range n.children {
		g.resolveStyles(c)
	}
}

// computedSize returns the node's preferred size, padding included,
// recomputing it when PREFERRED_SIZE is dirty. A recomputation dirties
// CONTENT_SIZE on the node.
func (g *Gui) computedSize(id WidgetID) Size {
	n := g.arena.get(id)
	if n.dirty&DirtyPreferredSize == 0 {
		return n.computed
	}
	var s Size
	switch n.kind {
	case KindLabel:
		s = measureLabel(n)
	case KindSlider:
		s = measureSlider(n)
	case KindVBox:
		s = g.measureBox(n, axisVertical)
	case KindHBox:
		s = g.measureBox(n, axisHorizontal)
	case KindPane:
		s = g.measurePane(n)
	}
	s = Size{n.preferredW.reconcile(s.Width), n.preferredH.reconcile(s.Height)}
	n.computed = s
	n.dirty &^= DirtyPreferredSize
	n.dirty |= DirtyContentSize
	g.stats.preferred++
	return s
}

// updateContentSize grants the node its size within available and
// distributes the node's content area to its children.
//
// A container whose content area is empty or negative keeps its children's
// previous layout and retries on the next call.
func (g *Gui) updateContentSize(id WidgetID, available Size) {
	n := g.arena.get(id)
	if n.dirty&DirtyContentSize == 0 && n.hasRef && n.refAvailable == available {
		return
	}
	size := n.computed
	if n.fillW.Enabled {
		size.Width = available.Width
	}
	if n.fillH.Enabled {
		size.Height = available.Height
	}
	size = size.Min(available).Max(Size{})

	n.widgetSize = size
	n.refAvailable = available
	n.hasRef = true
	n.rect.Width, n.rect.Height = size.Width, size.Height
	n.contentRect = n.padding.Shrink(n.rect)

	if len(n.children) > 0 {
		content := size.WithoutPadding(n.padding)
		if content.Width <= 0 || content.Height <= 0 {
			n.hasRef = false
		} else {
			switch n.kind {
			case KindVBox:
				g.distributeBox(n, content, axisVertical)
			case KindHBox:
				g.distributeBox(n, content, axisHorizontal)
			case KindPane:
				g.distributePane(n, content)
			}
		}
	}

	n.dirty &^= DirtyContentSize
	n.dirty |= DirtyPosition
	g.stats.content++
}

// updatePositions places the children of every POSITION-dirty node and
// recurses into children that are themselves POSITION-dirty.
func (g *Gui) updatePositions(id WidgetID) {
	n := g.arena.get(id)
	if n.dirty&DirtyPosition == 0 {
		return
	}
	if !n.hasRef {
		// Degenerate content area: children keep their previous layout.
		n.dirty &^= DirtyPosition
		return
	}
	switch n.kind {
	case KindVBox:
		g.positionBox(n, axisVertical)
	case KindHBox:
		g.positionBox(n, axisHorizontal)
	case KindPane:
		g.positionPane(n)
	}
	n.dirty &^= DirtyPosition
	g.stats.positions++
	for _, c := range n.children {
		g.updatePositions(c)
	}
}

// setOrigin moves the node's widget rectangle to origin, which is relative
// to the parent's widget origin.
func setOrigin(n *node, origin Vec2) {
	n.rect.X, n.rect.Y = origin.X, origin.Y
	n.contentRect = n.padding.Shrink(n.rect)
}
