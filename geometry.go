package trellis

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors used by built-in widget rendering.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGray  = Color{0.51, 0.51, 0.51, 1}
	ColorGreen = Color{0, 0.89, 0.19, 1}
)

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Add returns v offset by o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v minus o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{max(s.Width, o.Width), max(s.Height, o.Height)}
}

// Min returns the component-wise minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{min(s.Width, o.Width), min(s.Height, o.Height)}
}

// WithPadding returns s grown by the horizontal and vertical padding.
func (s Size) WithPadding(p Padding) Size {
	return Size{s.Width + p.Horizontal(), s.Height + p.Vertical()}
}

// WithoutPadding returns s shrunk by the horizontal and vertical padding.
// The result may be negative.
func (s Size) WithoutPadding(p Padding) Size {
	return Size{s.Width - p.Horizontal(), s.Height - p.Vertical()}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle. The
// rectangle is half-open: the top and left edges are inside, the bottom and
// right edges are not, so touching rectangles never share a point and an
// empty rectangle contains nothing.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Offset returns r translated by o.
func (r Rect) Offset(o Vec2) Rect {
	return Rect{r.X + o.X, r.Y + o.Y, r.Width, r.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 {
	return Vec2{r.X, r.Y}
}

// Size returns the rectangle extent.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Padding is the space between a widget's outer rectangle and its content.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding returns a Padding with the same value on all four sides.
func UniformPadding(v float64) Padding {
	return Padding{v, v, v, v}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// Shrink returns r with the padding removed from each side. Negative extents
// are clamped to zero.
func (p Padding) Shrink(r Rect) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  max(r.Width-p.Horizontal(), 0),
		Height: max(r.Height-p.Vertical(), 0),
	}
}

// VAlignment is the vertical anchor of a widget relative to its target point.
type VAlignment uint8

const (
	AlignTop    VAlignment = iota // target is the top edge
	AlignCenter                   // target is the vertical center
	AlignBottom                   // target is the bottom edge
)

// ShiftFactor returns the fraction of the height subtracted from the target.
func (a VAlignment) ShiftFactor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignBottom:
		return 1
	default:
		return 0
	}
}

// HAlignment is the horizontal anchor of a widget relative to its target point.
type HAlignment uint8

const (
	AlignLeft   HAlignment = iota // target is the left edge
	AlignMiddle                   // target is the horizontal center
	AlignRight                    // target is the right edge
)

// ShiftFactor returns the fraction of the width subtracted from the target.
func (a HAlignment) ShiftFactor() float64 {
	switch a {
	case AlignMiddle:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Alignment combines a vertical and a horizontal anchor.
type Alignment struct {
	Vertical   VAlignment
	Horizontal HAlignment
}

// Shift returns the offset to subtract from a target point so that a box of
// the given size is anchored according to a.
func (a Alignment) Shift(s Size) Vec2 {
	return Vec2{s.Width * a.Horizontal.ShiftFactor(), s.Height * a.Vertical.ShiftFactor()}
}

// Coordinate is one axis of a widget's declared position: either an absolute
// value or a percentage of the parent's content size.
type Coordinate struct {
	Value    float64
	Relative bool
}

// Absolute returns a Coordinate used verbatim.
func Absolute(v float64) Coordinate {
	return Coordinate{Value: v}
}

// Relative returns a Coordinate expressed as a percentage (0-100 scale) of the
// parent's content size along the same axis.
func Relative(percent float64) Coordinate {
	return Coordinate{Value: percent, Relative: true}
}

// Resolve returns the absolute coordinate for the given available extent.
func (c Coordinate) Resolve(available float64) float64 {
	if c.Relative {
		return c.Value * available * 0.01
	}
	return c.Value
}

// Position is a widget's declared target point.
type Position struct {
	X, Y Coordinate
}

// Resolve returns the target point inside a parent content area of size s.
func (p Position) Resolve(s Size) Vec2 {
	return Vec2{p.X.Resolve(s.Width), p.Y.Resolve(s.Height)}
}

// Fill is the fill policy along one axis. The zero value is disabled.
type Fill struct {
	Enabled bool
	Weight  uint32
}

// FillDisabled keeps the widget at its preferred extent.
var FillDisabled = Fill{}

// FillEnabled makes the widget expand into offered space with the given
// weight relative to its filling siblings.
func FillEnabled(weight uint32) Fill {
	return Fill{Enabled: true, Weight: weight}
}

// Dimension is an optional requested width or height. The zero value is unset.
type Dimension struct {
	Value float64
	Set   bool
}

// Fixed returns a set Dimension.
func Fixed(v float64) Dimension {
	return Dimension{Value: v, Set: true}
}

// reconcile returns the computed value when d is unset, otherwise the larger
// of the requested and computed values.
func (d Dimension) reconcile(computed float64) float64 {
	if !d.Set {
		return computed
	}
	return max(d.Value, computed)
}
