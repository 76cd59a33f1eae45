package trellis

// axis selects the main axis of a box container.
type axis uint8

const (
	axisHorizontal axis = iota // HBox
	axisVertical               // VBox
)

func (a axis) main(s Size) float64 {
	if a == axisVertical {
		return s.Height
	}
	return s.Width
}

func (a axis) cross(s Size) float64 {
	if a == axisVertical {
		return s.Width
	}
	return s.Height
}

// size builds a Size from main and cross extents.
func (a axis) size(main, cross float64) Size {
	if a == axisVertical {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// point builds a Vec2 from main and cross offsets.
func (a axis) point(main, cross float64) Vec2 {
	if a == axisVertical {
		return Vec2{X: cross, Y: main}
	}
	return Vec2{X: main, Y: cross}
}

// fill returns the node's fill policy along the axis.
func (a axis) fill(n *node) Fill {
	if a == axisVertical {
		return n.fillH
	}
	return n.fillW
}

// leading returns the padding before the content along the main and cross
// axes.
func (a axis) leading(p Padding) (main, cross float64) {
	if a == axisVertical {
		return p.Top, p.Left
	}
	return p.Left, p.Top
}

// gaps returns the total spacing between n children.
func gaps(spacing float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return spacing * float64(n-1)
}

// measureBox sums the children's main extents plus spacing and takes the
// largest cross extent, then adds padding.
func (g *Gui) measureBox(n *node, ax axis) Size {
	var mainSum, crossMax float64
	for _, c := range n.children {
		cs := g.computedSize(c)
		mainSum += ax.main(cs)
		crossMax = max(crossMax, ax.cross(cs))
	}
	mainSum += gaps(n.spacing, len(n.children))
	return ax.size(mainSum, crossMax).WithPadding(n.padding)
}

// distributeBox offers every fixed child its preferred main extent and
// splits what remains among filling children by weight. Every child is
// offered the full cross extent of the content area.
//
// Filled shares are not floored at the child's preferred size, so a
// crowded box can compress a filling child below it.
func (g *Gui) distributeBox(n *node, content Size, ax axis) {
	remainder := ax.main(content) - gaps(n.spacing, len(n.children))
	var totalWeight float64
	for _, c := range n.children {
		cn := g.arena.get(c)
		if f := ax.fill(cn); f.Enabled {
			totalWeight += float64(f.Weight)
		} else {
			remainder -= ax.main(cn.computed)
		}
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	cross := ax.cross(content)
	for _, c := range n.children {
		cn := g.arena.get(c)
		main := ax.main(cn.computed)
		if f := ax.fill(cn); f.Enabled {
			main = remainder * float64(f.Weight) / totalWeight
		}
		g.updateContentSize(c, ax.size(main, cross))
	}
}

// positionBox stacks children along the main axis starting at the leading
// padding, advancing by each child's granted extent plus spacing, and
// centers each child on the cross axis.
func (g *Gui) positionBox(n *node, ax axis) {
	cur, crossStart := ax.leading(n.padding)
	crossExtent := ax.cross(n.contentRect.Size())
	for _, c := range n.children {
		cn := g.arena.get(c)
		cs := cn.widgetSize
		crossOff := crossStart + (crossExtent-ax.cross(cs))*0.5
		setOrigin(cn, ax.point(cur, crossOff))
		cur += ax.main(cs) + n.spacing
	}
}
