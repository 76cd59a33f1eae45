// Package raster renders a trellis GUI in software with [gg], for headless
// tests and offline PNG snapshots.
//
//	c := raster.NewCanvas(320, 240)
//	gui.Layout(c.Size())
//	gui.Render(c, trellis.Vec2{})
//	err := c.SavePNG("out.png")
//
// [gg]: https://github.com/fogleman/gg
package raster

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/phanxgames/trellis"
)

// Font is an x/image font face. It implements trellis.Font.
type Font struct {
	face font.Face
	lh   float64
}

var _ trellis.Font = (*Font)(nil)

// ParseFont parses TTF/OTF data into a face of the given pixel size.
func ParseFont(data []byte, size float64) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: new face: %w", err)
	}
	m := face.Metrics()
	return &Font{face: face, lh: float64(m.Height.Ceil())}, nil
}

// DefaultFont returns the Go Regular face at the given size.
func DefaultFont(size float64) (*Font, error) {
	return ParseFont(goregular.TTF, size)
}

// MeasureString returns the extent of s with spacing added between runes.
func (f *Font) MeasureString(s string, spacing float64) trellis.Size {
	w := float64(font.MeasureString(f.face, s).Ceil())
	if n := utf8.RuneCountInString(s); n > 1 {
		w += spacing * float64(n-1)
	}
	return trellis.Size{Width: w, Height: f.lh}
}

// LineHeight returns the face height.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying font face.
func (f *Font) Face() font.Face {
	return f.face
}

// Loader implements trellis.FontLoader by reading font files from disk.
type Loader struct{}

// LoadFont reads and parses the font file at path. The glyph count is
// ignored.
func (Loader) LoadFont(path string, size float64, _ int) (trellis.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	f, err := ParseFont(data, size)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Canvas is a trellis.Surface over a gg context.
type Canvas struct {
	dc *gg.Context
}

var _ trellis.Surface = (*Canvas)(nil)

// NewCanvas returns a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Size returns the canvas extent as a trellis.Size.
func (c *Canvas) Size() trellis.Size {
	return trellis.Size{Width: float64(c.dc.Width()), Height: float64(c.dc.Height())}
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col trellis.Color) {
	c.dc.SetColor(toNRGBA(col))
	c.dc.Clear()
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r trellis.Rect, col trellis.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.dc.SetColor(toNRGBA(col))
	c.dc.Fill()
}

// StrokeRect draws the outline of r with the stroke kept inside r.
func (c *Canvas) StrokeRect(r trellis.Rect, thickness float64, col trellis.Color) {
	if r.Width <= 0 || r.Height <= 0 || thickness <= 0 {
		return
	}
	half := thickness * 0.5
	c.dc.DrawRectangle(r.X+half, r.Y+half, r.Width-thickness, r.Height-thickness)
	c.dc.SetLineWidth(thickness)
	c.dc.SetColor(toNRGBA(col))
	c.dc.Stroke()
}

// DrawText draws s with its top-left corner at at. f must be a *Font;
// other fonts are ignored.
func (c *Canvas) DrawText(f trellis.Font, s string, at trellis.Vec2, spacing float64, col trellis.Color) {
	rf, ok := f.(*Font)
	if !ok || s == "" {
		return
	}
	c.dc.SetFontFace(rf.face)
	c.dc.SetColor(toNRGBA(col))
	ascent := float64(rf.face.Metrics().Ascent.Ceil())
	if spacing == 0 {
		c.dc.DrawString(s, at.X, at.Y+ascent)
		return
	}
	x := at.X
	for _, r := range s {
		glyph := string(r)
		c.dc.DrawString(glyph, x, at.Y+ascent)
		x += float64(font.MeasureString(rf.face, glyph).Ceil()) + spacing
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// Snapshot lays gui out at the canvas size and renders it onto a canvas
// cleared to background.
func Snapshot(gui *trellis.Gui, width, height int, background trellis.Color) *Canvas {
	c := NewCanvas(width, height)
	c.Clear(background)
	gui.Layout(c.Size())
	gui.Render(c, trellis.Vec2{})
	return c
}

func toNRGBA(c trellis.Color) color.NRGBA {
	to8 := func(v float64) uint8 { return uint8(max(0, min(1, v))*255 + 0.5) }
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}
