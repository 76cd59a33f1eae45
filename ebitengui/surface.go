package ebitengui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/trellis"
)

// Surface draws trellis primitives onto an *ebiten.Image.
type Surface struct {
	Target    *ebiten.Image
	Antialias bool
}

var _ trellis.Surface = (*Surface)(nil)

// NewSurface returns a Surface drawing onto target.
func NewSurface(target *ebiten.Image) *Surface {
	return &Surface{Target: target}
}

// FillRect fills r with c.
func (s *Surface) FillRect(r trellis.Rect, c trellis.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	vector.DrawFilledRect(s.Target,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		toNRGBA(c), s.Antialias)
}

// StrokeRect draws the outline of r with the stroke kept inside r.
func (s *Surface) StrokeRect(r trellis.Rect, thickness float64, c trellis.Color) {
	if r.Width <= 0 || r.Height <= 0 || thickness <= 0 {
		return
	}
	half := thickness * 0.5
	vector.StrokeRect(s.Target,
		float32(r.X+half), float32(r.Y+half),
		float32(r.Width-thickness), float32(r.Height-thickness),
		float32(thickness), toNRGBA(c), s.Antialias)
}

// DrawText draws s with its top-left corner at at. f must be a *TTFFont;
// other fonts are ignored. Non-zero spacing draws rune by rune.
func (s *Surface) DrawText(f trellis.Font, str string, at trellis.Vec2, spacing float64, c trellis.Color) {
	tf, ok := f.(*TTFFont)
	if !ok || str == "" {
		return
	}
	if spacing == 0 {
		s.drawRun(tf, str, at.X, at.Y, c)
		return
	}
	x := at.X
	for _, r := range str {
		glyph := string(r)
		s.drawRun(tf, glyph, x, at.Y, c)
		x += text.Advance(glyph, tf.face) + spacing
	}
}

func (s *Surface) drawRun(f *TTFFont, str string, x, y float64, c trellis.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toNRGBA(c))
	op.LineSpacing = f.lh
	text.Draw(s.Target, str, f.face, op)
}

// toNRGBA converts a [0, 1] straight-alpha color to color.NRGBA.
func toNRGBA(c trellis.Color) color.NRGBA {
	to8 := func(v float64) uint8 { return uint8(max(0, min(1, v))*255 + 0.5) }
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}
