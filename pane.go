package trellis

// absoluteOnly returns the coordinate value when it is absolute. Relative
// coordinates depend on the pane's own size and do not contribute to it.
func absoluteOnly(c Coordinate) float64 {
	if c.Relative {
		return 0
	}
	return c.Value
}

// measurePane returns the bounding box of the non-filling children placed at
// their declared targets, unioned with the largest filling child, plus
// padding.
func (g *Gui) measurePane(n *node) Size {
	var bounds, filled Size
	for _, c := range n.children {
		cs := g.computedSize(c)
		cn := g.arena.get(c)
		if cn.fillW.Enabled || cn.fillH.Enabled {
			filled = filled.Max(cs)
			continue
		}
		target := Vec2{absoluteOnly(cn.position.X), absoluteOnly(cn.position.Y)}
		origin := target.Sub(cn.alignment.Shift(cs))
		bounds = bounds.Max(Size{origin.X + cs.Width, origin.Y + cs.Height})
	}
	return bounds.Max(filled).WithPadding(n.padding)
}

// distributePane offers the whole content area to every child.
func (g *Gui) distributePane(n *node, content Size) {
	for _, c := range n.children {
		g.updateContentSize(c, content)
	}
}

// positionPane places each child at its declared target within the content
// area, shifted by its alignment.
func (g *Gui) positionPane(n *node) {
	content := n.contentRect.Size()
	inset := Vec2{n.padding.Left, n.padding.Top}
	for _, c := range n.children {
		cn := g.arena.get(c)
		target := cn.position.Resolve(content)
		setOrigin(cn, inset.Add(target).Sub(cn.alignment.Shift(cn.widgetSize)))
	}
}
