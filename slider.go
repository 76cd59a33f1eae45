package trellis

import (
	"fmt"
	"math"
)

// Slider geometry. The bar is the minimum content size; the cursor is drawn
// inset vertically inside the content rectangle.
const (
	sliderBarWidth    = 100.0
	sliderBarHeight   = 20.0
	sliderCursorWidth = 5.0
	sliderCursorInset = 2.0
	sliderValueFormat = "%5.1f"
)

// Slider colors.
var (
	SliderTrackColor  = ColorGray
	SliderCursorColor = ColorGreen
)

func formatSliderValue(v float64) string {
	return fmt.Sprintf(sliderValueFormat, v)
}

// measureSlider returns the larger of the formatted value text and the bar,
// plus padding.
func measureSlider(n *node) Size {
	n.textSize = n.resolvedText.measure(formatSliderValue(n.value))
	return n.textSize.Max(Size{sliderBarWidth, sliderBarHeight}).WithPadding(n.padding)
}

// sliderFraction returns where value sits in [lo, hi] as a fraction in
// [0, 1]. A degenerate range yields 0.
func sliderFraction(value, lo, hi float64) float64 {
	span := hi - lo
	if span == 0 || math.IsNaN(span) {
		return 0
	}
	return clamp01((value - lo) / span)
}

// sliderValueAt maps an absolute x coordinate to a value in the slider's
// range. content is the absolute content rectangle. The cursor's half width
// is compensated so the value under the cursor center is reported.
func sliderValueAt(x float64, content Rect, lo, hi float64) float64 {
	travel := content.Width - sliderCursorWidth
	if travel <= 0 || hi == lo {
		return lo
	}
	t := clamp01((x - content.X - sliderCursorWidth*0.5) / travel)
	return lo + t*(hi-lo)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// sliderCursorRect returns the cursor rectangle within the absolute content
// rectangle for the node's current value.
func sliderCursorRect(n *node, content Rect) Rect {
	t := sliderFraction(n.value, n.valueMin, n.valueMax)
	return Rect{
		X:      content.X + (content.Width-sliderCursorWidth)*t,
		Y:      content.Y + sliderCursorInset,
		Width:  sliderCursorWidth,
		Height: max(content.Height-2*sliderCursorInset, 0),
	}
}

// renderSlider draws the track over the content rectangle, the cursor at the
// current value and the formatted value centered on top.
func renderSlider(s Surface, n *node, offset Vec2) {
	content := n.contentRect.Offset(offset)
	s.FillRect(content, SliderTrackColor)
	s.FillRect(sliderCursorRect(n, content), SliderCursorColor)

	ts := n.resolvedText
	if ts == nil || ts.font == nil {
		return
	}
	at := Vec2{
		X: content.X + (content.Width-n.textSize.Width)*0.5,
		Y: content.Y + (content.Height-n.textSize.Height)*0.5,
	}
	s.DrawText(ts.font, formatSliderValue(n.value), at, ts.spacing, ts.color)
}
