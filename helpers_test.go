package trellis

import (
	"math"
	"testing"
	"unicode/utf8"
)

// monoFont measures every rune as charW wide and every line as lineH high.
type monoFont struct {
	charW, lineH float64
}

func (f monoFont) MeasureString(s string, spacing float64) Size {
	n := utf8.RuneCountInString(s)
	w := float64(n) * f.charW
	if n > 1 {
		w += spacing * float64(n-1)
	}
	return Size{Width: w, Height: f.lineH}
}

func (f monoFont) LineHeight() float64 { return f.lineH }

// drawOp is one call recorded by recordingSurface.
type drawOp struct {
	op        string // "fill", "stroke" or "text"
	rect      Rect
	at        Vec2
	text      string
	color     Color
	thickness float64
}

type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.ops = append(s.ops, drawOp{op: "fill", rect: r, color: c})
}

func (s *recordingSurface) StrokeRect(r Rect, thickness float64, c Color) {
	s.ops = append(s.ops, drawOp{op: "stroke", rect: r, color: c, thickness: thickness})
}

func (s *recordingSurface) DrawText(_ Font, text string, at Vec2, _ float64, c Color) {
	s.ops = append(s.ops, drawOp{op: "text", at: at, text: text, color: c})
}

// newTextGui returns a Gui whose "default" text style uses a monoFont with
// 10px wide glyphs and 20px lines.
func newTextGui(t *testing.T) *Gui {
	t.Helper()
	g := NewGui()
	if err := g.Styles().AddFont("mono", monoFont{charW: 10, lineH: 20}); err != nil {
		t.Fatal(err)
	}
	if err := g.Styles().AddTextStyle(DefaultStyleName, "mono", ColorBlack, 0); err != nil {
		t.Fatal(err)
	}
	return g
}

// fixedBox returns a detached pane with the given requested size.
func fixedBox(g *Gui, w, h float64) Widget {
	return g.NewPane().SetPreferredWidth(w).SetPreferredHeight(h)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// frame feeds one raw pointer sample through a ButtonTracker.
type pointer struct {
	g  *Gui
	bt ButtonTracker
}

func (p *pointer) at(x, y float64, down bool) {
	p.g.UpdateInteraction(Vec2{x, y}, p.bt.Next(ButtonsDown{Left: down}))
}
