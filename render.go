package trellis

// Surface is the host drawing target. Coordinates are absolute, in pixels,
// with the origin at the top-left.
type Surface interface {
	FillRect(r Rect, c Color)
	// StrokeRect draws a rectangle outline of the given thickness inside r.
	StrokeRect(r Rect, thickness float64, c Color)
	// DrawText draws text with its top-left corner at at.
	DrawText(f Font, text string, at Vec2, spacing float64, c Color)
}

// Render draws the tree onto s using the rectangles of the last Layout.
// offset is added to every rectangle.
func (g *Gui) Render(s Surface, offset Vec2) {
	if g.arena.root.IsZero() {
		return
	}
	g.renderNode(s, g.arena.root, offset)
}

// renderNode paints background, border and kind-specific content, then
// recurses into children. Child rectangles are relative to the node's widget
// origin and already include its padding.
func (g *Gui) renderNode(s Surface, id WidgetID, offset Vec2) {
	n := g.arena.get(id)
	r := n.rect.Offset(offset)

	if b := n.resolvedBack; b != nil && b.Solid {
		target := n.hovered && !n.childHovered
		s.FillRect(r, b.colorFor(target, n.armed))
	}
	if b := n.resolvedFrame; b != nil && b.Line && b.Thickness > 0 {
		s.StrokeRect(r, b.Thickness, b.Color)
	}

	switch n.kind {
	case KindLabel:
		renderLabel(s, n, offset)
	case KindSlider:
		renderSlider(s, n, offset)
	}

	childOffset := offset.Add(n.rect.Origin())
	for _, c := range n.children {
		g.renderNode(s, c, childOffset)
	}
}
