package trellis

// measureLabel measures the label text with the resolved text style. A label
// without a usable font measures as its padding alone.
func measureLabel(n *node) Size {
	n.textSize = n.resolvedText.measure(n.text)
	return n.textSize.WithPadding(n.padding)
}

// renderLabel draws the text at the top-left of the content rectangle.
func renderLabel(s Surface, n *node, offset Vec2) {
	ts := n.resolvedText
	if ts == nil || ts.font == nil || n.text == "" {
		return
	}
	content := n.contentRect.Offset(offset)
	s.DrawText(ts.font, n.text, content.Origin(), ts.spacing, ts.color)
}
