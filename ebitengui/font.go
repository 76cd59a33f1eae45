package ebitengui

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/trellis"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
// It implements trellis.Font.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

var _ trellis.Font = (*TTFFont)(nil)

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitengui: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// DefaultFont returns the Go Regular face at the given size.
func DefaultFont(size float64) (*TTFFont, error) {
	return LoadTTFFont(goregular.TTF, size)
}

// MeasureString returns the extent of s. Spacing is added between every
// pair of runes.
func (f *TTFFont) MeasureString(s string, spacing float64) trellis.Size {
	w, h := text.Measure(s, f.face, f.lh)
	if n := utf8.RuneCountInString(s); n > 1 {
		w += spacing * float64(n-1)
	}
	return trellis.Size{Width: w, Height: max(h, f.lh)}
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// Loader implements trellis.FontLoader by reading TTF/OTF files from disk.
// The glyph count is ignored; text/v2 caches glyphs on demand.
type Loader struct{}

// LoadFont reads and parses the font file at path.
func (Loader) LoadFont(path string, size float64, _ int) (trellis.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ebitengui: %w", err)
	}
	f, err := LoadTTFFont(data, size)
	if err != nil {
		return nil, err
	}
	return f, nil
}
