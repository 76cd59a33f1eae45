package trellis

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme is a set of fonts and styles decoded from a TOML document:
//
//	[fonts.body]
//	path = "fonts/Go-Regular.ttf"
//	size = 18
//	glyphs = 200
//
//	[text.default]
//	font = "body"
//	color = "#202020"
//
//	[backgrounds.button]
//	idle = "#e0e0e0"
//	hovered = "#f0f0f0"
//	armed = "#c0c0c0"
//
//	[borders.default]
//	color = "#000000"
//	thickness = 1
//
// Colors are written as #rrggbb or #rrggbbaa.
type Theme struct {
	Fonts       map[string]ThemeFont       `toml:"fonts"`
	TextStyles  map[string]ThemeTextStyle  `toml:"text"`
	Backgrounds map[string]ThemeBackground `toml:"backgrounds"`
	Borders     map[string]ThemeBorder     `toml:"borders"`

	// baseDir resolves relative font paths. Set by LoadThemeFile.
	baseDir string
}

// ThemeFont describes a font file to load.
type ThemeFont struct {
	Path   string  `toml:"path"`
	Size   float64 `toml:"size"`
	Glyphs int     `toml:"glyphs"`
}

// ThemeTextStyle is the TOML form of a TextStyle.
type ThemeTextStyle struct {
	Font    string   `toml:"font"`
	Color   HexColor `toml:"color"`
	Spacing float64  `toml:"spacing"`
}

// ThemeBackground is the TOML form of a Background. An entry with
// empty = true draws nothing.
type ThemeBackground struct {
	Empty   bool     `toml:"empty"`
	Idle    HexColor `toml:"idle"`
	Hovered HexColor `toml:"hovered"`
	Armed   HexColor `toml:"armed"`
}

// ThemeBorder is the TOML form of a Border. A zero thickness draws nothing.
type ThemeBorder struct {
	Color     HexColor `toml:"color"`
	Thickness float64  `toml:"thickness"`
}

// HexColor is a Color that decodes from "#rrggbb" or "#rrggbbaa".
type HexColor Color

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *HexColor) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = HexColor(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c HexColor) MarshalText() ([]byte, error) {
	to8 := func(v float64) uint8 { return uint8(max(0, min(1, v))*255 + 0.5) }
	s := fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
	if c.A < 1 {
		s += fmt.Sprintf("%02x", to8(c.A))
	}
	return []byte(s), nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". Alpha defaults to opaque.
func ParseHexColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("trellis: invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("trellis: invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// LoadTheme decodes a TOML theme document.
func LoadTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("trellis: parse theme: %w", err)
	}
	return &t, nil
}

// LoadThemeFile reads and decodes a TOML theme file. Relative font paths are
// resolved against the file's directory.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trellis: read theme: %w", err)
	}
	t, err := LoadTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.baseDir = filepath.Dir(path)
	return t, nil
}

// ApplyTheme loads the theme's fonts, then registers its text styles,
// backgrounds and borders, each in name order. Fonts must not already be
// registered; styles replace existing entries of the same name. The first
// error aborts.
func (g *Gui) ApplyTheme(t *Theme) error {
	for _, name := range slices.Sorted(maps.Keys(t.Fonts)) {
		f := t.Fonts[name]
		path := f.Path
		if t.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(t.baseDir, path)
		}
		if _, err := g.styles.LoadFont(name, path, f.Size, f.Glyphs); err != nil {
			return fmt.Errorf("trellis: theme font %q: %w", name, err)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(t.TextStyles)) {
		s := t.TextStyles[name]
		g.styles.ReplaceTextStyle(name, TextStyle{Font: s.Font, Color: Color(s.Color), Spacing: s.Spacing})
	}
	for _, name := range slices.Sorted(maps.Keys(t.Backgrounds)) {
		b := t.Backgrounds[name]
		if b.Empty {
			g.styles.ReplaceBackground(name, EmptyBackground())
			continue
		}
		g.styles.ReplaceBackground(name, SolidBackground(Color(b.Idle), Color(b.Hovered), Color(b.Armed)))
	}
	for _, name := range slices.Sorted(maps.Keys(t.Borders)) {
		b := t.Borders[name]
		if b.Thickness <= 0 {
			g.styles.ReplaceBorder(name, EmptyBorder())
			continue
		}
		g.styles.ReplaceBorder(name, LineBorder(Color(b.Color), b.Thickness))
	}
	return nil
}
