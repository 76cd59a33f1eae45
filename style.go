package trellis

import (
	"errors"
	"fmt"
)

// DefaultStyleName is the style name every new widget references for its
// text, background and border styles.
const DefaultStyleName = "default"

var (
	// ErrDuplicateName is returned when a style or font name is registered twice.
	ErrDuplicateName = errors.New("trellis: duplicate name")
	// ErrNoFontLoader is returned by LoadFont when the registry has no FontLoader.
	ErrNoFontLoader = errors.New("trellis: no font loader configured")
	// ErrUnknownFont is returned when a text style references an unregistered font.
	ErrUnknownFont = errors.New("trellis: unknown font")
)

// Font measures and identifies a loaded typeface. Backends supply the
// implementation; a Surface receives the same value when drawing text.
type Font interface {
	// MeasureString returns the extent of text drawn with the given extra
	// spacing between glyphs.
	MeasureString(text string, spacing float64) Size
	// LineHeight returns the height of one line of text.
	LineHeight() float64
}

// FontLoader decodes a font file into a Font. size is the pixel size and
// glyphCount the number of glyphs to prepare, when the backend caches them.
type FontLoader interface {
	LoadFont(path string, size float64, glyphCount int) (Font, error)
}

// TextStyle names a font and the color and glyph spacing to draw it with.
type TextStyle struct {
	Font    string
	Color   Color
	Spacing float64
}

// Background is either empty or a solid fill with one color per
// interaction state.
type Background struct {
	Solid   bool
	Idle    Color
	Hovered Color
	Armed   Color
}

// EmptyBackground draws nothing.
func EmptyBackground() Background {
	return Background{}
}

// SolidBackground fills the widget rectangle with idle, hovered or armed
// depending on the widget's interaction state.
func SolidBackground(idle, hovered, armed Color) Background {
	return Background{Solid: true, Idle: idle, Hovered: hovered, Armed: armed}
}

// colorFor returns the fill color for the given state.
func (b Background) colorFor(hovered, armed bool) Color {
	switch {
	case armed:
		return b.Armed
	case hovered:
		return b.Hovered
	default:
		return b.Idle
	}
}

// Border is either empty or a line of the given color and thickness drawn
// inside the widget rectangle.
type Border struct {
	Line      bool
	Color     Color
	Thickness float64
}

// EmptyBorder draws nothing.
func EmptyBorder() Border {
	return Border{}
}

// LineBorder strokes the widget rectangle.
func LineBorder(c Color, thickness float64) Border {
	return Border{Line: true, Color: c, Thickness: thickness}
}

// resolvedTextStyle is a TextStyle with its font looked up. font is nil when
// the style references an unknown font; text then measures as zero.
type resolvedTextStyle struct {
	font    Font
	color   Color
	spacing float64
}

func (r *resolvedTextStyle) measure(text string) Size {
	if r == nil || r.font == nil {
		return Size{}
	}
	return r.font.MeasureString(text, r.spacing)
}

// styleKind tags registry change notifications.
type styleKind uint8

const (
	styleKindText styleKind = iota
	styleKindBackground
	styleKindBorder
	styleKindFont
)

// StyleRegistry holds named fonts, text styles, backgrounds and borders.
// Widgets reference entries by name; an unknown name resolves to no style.
type StyleRegistry struct {
	fonts       map[string]Font
	textStyles  map[string]TextStyle
	backgrounds map[string]Background
	borders     map[string]Border
	loader      FontLoader

	// onChange is called after an entry is added or replaced.
	onChange func(kind styleKind, name string)
}

// NewStyleRegistry returns an empty registry.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{
		fonts:       make(map[string]Font),
		textStyles:  make(map[string]TextStyle),
		backgrounds: make(map[string]Background),
		borders:     make(map[string]Border),
	}
}

// SetFontLoader sets the loader used by LoadFont.
func (r *StyleRegistry) SetFontLoader(l FontLoader) {
	r.loader = l
}

func (r *StyleRegistry) notify(kind styleKind, name string) {
	if r.onChange != nil {
		r.onChange(kind, name)
	}
}

// AddFont registers an already loaded font under name.
func (r *StyleRegistry) AddFont(name string, f Font) error {
	if _, ok := r.fonts[name]; ok {
		return fmt.Errorf("font %q: %w", name, ErrDuplicateName)
	}
	r.fonts[name] = f
	r.notify(styleKindFont, name)
	return nil
}

// LoadFont decodes the font file at path with the configured FontLoader and
// registers it under name. It returns name on success.
func (r *StyleRegistry) LoadFont(name, path string, size float64, glyphCount int) (string, error) {
	if _, ok := r.fonts[name]; ok {
		return "", fmt.Errorf("font %q: %w", name, ErrDuplicateName)
	}
	if r.loader == nil {
		return "", ErrNoFontLoader
	}
	f, err := r.loader.LoadFont(path, size, glyphCount)
	if err != nil {
		return "", fmt.Errorf("trellis: load font %q from %s: %w", name, path, err)
	}
	r.fonts[name] = f
	r.notify(styleKindFont, name)
	return name, nil
}

// Font returns the font registered under name.
func (r *StyleRegistry) Font(name string) (Font, bool) {
	f, ok := r.fonts[name]
	return f, ok
}

// AddTextStyle registers a text style. The referenced font does not need to
// exist yet; it is looked up whenever the style is resolved.
func (r *StyleRegistry) AddTextStyle(name, fontName string, color Color, spacing float64) error {
	if _, ok := r.textStyles[name]; ok {
		return fmt.Errorf("text style %q: %w", name, ErrDuplicateName)
	}
	r.textStyles[name] = TextStyle{Font: fontName, Color: color, Spacing: spacing}
	r.notify(styleKindText, name)
	return nil
}

// ReplaceTextStyle registers or overwrites a text style. Widgets using it
// re-resolve on the next layout.
func (r *StyleRegistry) ReplaceTextStyle(name string, s TextStyle) {
	r.textStyles[name] = s
	r.notify(styleKindText, name)
}

// TextStyle returns the text style registered under name.
func (r *StyleRegistry) TextStyle(name string) (TextStyle, bool) {
	s, ok := r.textStyles[name]
	return s, ok
}

// AddBackground registers a background.
func (r *StyleRegistry) AddBackground(name string, b Background) error {
	if _, ok := r.backgrounds[name]; ok {
		return fmt.Errorf("background %q: %w", name, ErrDuplicateName)
	}
	r.backgrounds[name] = b
	r.notify(styleKindBackground, name)
	return nil
}

// ReplaceBackground registers or overwrites a background.
func (r *StyleRegistry) ReplaceBackground(name string, b Background) {
	r.backgrounds[name] = b
	r.notify(styleKindBackground, name)
}

// Background returns the background registered under name.
func (r *StyleRegistry) Background(name string) (Background, bool) {
	b, ok := r.backgrounds[name]
	return b, ok
}

// AddBorder registers a border.
func (r *StyleRegistry) AddBorder(name string, b Border) error {
	if _, ok := r.borders[name]; ok {
		return fmt.Errorf("border %q: %w", name, ErrDuplicateName)
	}
	r.borders[name] = b
	r.notify(styleKindBorder, name)
	return nil
}

// ReplaceBorder registers or overwrites a border.
func (r *StyleRegistry) ReplaceBorder(name string, b Border) {
	r.borders[name] = b
	r.notify(styleKindBorder, name)
}

// Border returns the border registered under name.
func (r *StyleRegistry) Border(name string) (Border, bool) {
	b, ok := r.borders[name]
	return b, ok
}

// resolveText looks up a text style and its font. Returns nil when the style
// is unknown. An unknown font yields a style with a nil font.
func (r *StyleRegistry) resolveText(name string) *resolvedTextStyle {
	s, ok := r.textStyles[name]
	if !ok {
		return nil
	}
	return &resolvedTextStyle{font: r.fonts[s.Font], color: s.Color, spacing: s.Spacing}
}

func (r *StyleRegistry) resolveBackground(name string) *Background {
	b, ok := r.backgrounds[name]
	if !ok {
		return nil
	}
	return &b
}

func (r *StyleRegistry) resolveBorder(name string) *Border {
	b, ok := r.borders[name]
	if !ok {
		return nil
	}
	return &b
}

// Validate reports text styles that reference unregistered fonts. Each such
// style renders without text, so callers typically check this after setup.
func (r *StyleRegistry) Validate() error {
	var errs []error
	for name, s := range r.textStyles {
		if _, ok := r.fonts[s.Font]; !ok {
			errs = append(errs, fmt.Errorf("text style %q references font %q: %w", name, s.Font, ErrUnknownFont))
		}
	}
	return errors.Join(errs...)
}
