package trellis

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testTheme = `
[fonts.body]
path = "fonts/body.ttf"
size = 18
glyphs = 200

[text.default]
font = "body"
color = "#ff0000"
spacing = 1.5

[backgrounds.button]
idle = "#000000"
hovered = "#808080"
armed = "#ffffff80"

[backgrounds.clear]
empty = true

[borders.default]
color = "#00ff00"
thickness = 2

[borders.none]
thickness = 0
`

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{1, 0, 0, 1}, false},
		{"#00ff00ff", Color{0, 1, 0, 1}, false},
		{" #000000 ", Color{0, 0, 0, 1}, false},
		{"#ffffff00", Color{1, 1, 1, 0}, false},
		{"ff0000", Color{}, true},
		{"#fff", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexColorMarshalText(t *testing.T) {
	tests := []struct {
		c    HexColor
		want string
	}{
		{HexColor{1, 0, 0, 1}, "#ff0000"},
		{HexColor{1, 0, 0, 0.5}, "#ff000080"},
		{HexColor{2, -1, 0, 1}, "#ff0000"},
	}
	for _, tt := range tests {
		got, err := tt.c.MarshalText()
		if err != nil || string(got) != tt.want {
			t.Errorf("MarshalText(%+v) = %q, %v; want %q", tt.c, got, err, tt.want)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	th, err := LoadTheme([]byte(testTheme))
	if err != nil {
		t.Fatal(err)
	}
	if f := th.Fonts["body"]; f.Path != "fonts/body.ttf" || f.Size != 18 || f.Glyphs != 200 {
		t.Errorf("font = %+v", f)
	}
	if s := th.TextStyles["default"]; s.Font != "body" || Color(s.Color) != (Color{1, 0, 0, 1}) || s.Spacing != 1.5 {
		t.Errorf("text style = %+v", s)
	}
	b := th.Backgrounds["button"]
	if Color(b.Armed).A < 0.5 || Color(b.Armed).A > 0.51 {
		t.Errorf("armed alpha = %v, want ~0.5", b.Armed.A)
	}
	if !th.Backgrounds["clear"].Empty {
		t.Error("clear background should be empty")
	}
	if th.Borders["default"].Thickness != 2 {
		t.Errorf("border = %+v", th.Borders["default"])
	}
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[fonts.body\npath = 1"},
		{"bad color", "[text.default]\ncolor = \"red\""},
		{"wrong type", "[fonts.body]\nsize = \"big\""},
	}
	for _, tt := range tests {
		if _, err := LoadTheme([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestApplyTheme(t *testing.T) {
	g := NewGui()
	loader := &fakeLoader{}
	g.Styles().SetFontLoader(loader)

	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte(testTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadThemeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyTheme(th); err != nil {
		t.Fatal(err)
	}

	if want := filepath.Join(dir, "fonts", "body.ttf"); len(loader.paths) != 1 || loader.paths[0] != want {
		t.Errorf("loaded %v, want [%s]", loader.paths, want)
	}
	st := g.Styles()
	if s, ok := st.TextStyle("default"); !ok || s.Font != "body" {
		t.Errorf("text style = %+v %v", s, ok)
	}
	if b, ok := st.Background("button"); !ok || !b.Solid || b.Hovered.R < 0.5 {
		t.Errorf("button background = %+v %v", b, ok)
	}
	if b, ok := st.Background("clear"); !ok || b.Solid {
		t.Errorf("clear background = %+v %v", b, ok)
	}
	if b, ok := st.Border("default"); !ok || !b.Line || b.Color != (Color{0, 1, 0, 1}) {
		t.Errorf("default border = %+v %v", b, ok)
	}
	if b, ok := st.Border("none"); !ok || b.Line {
		t.Errorf("none border = %+v %v", b, ok)
	}
	if err := st.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// Labels measure with the themed font: 9px glyphs, 18px lines.
	label := g.SetRoot(g.NewLabel("ab"))
	g.Layout(Size{Width: 100, Height: 100})
	if got := label.ComputedSize(); got != (Size{19.5, 18}) {
		t.Errorf("label = %+v, want {19.5 18}", got)
	}

	// Applying again fails: fonts are not replaced.
	if err := g.ApplyTheme(th); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("second apply = %v, want ErrDuplicateName", err)
	}
}

func TestApplyThemeWithoutLoader(t *testing.T) {
	th, err := LoadTheme([]byte(testTheme))
	if err != nil {
		t.Fatal(err)
	}
	if err := NewGui().ApplyTheme(th); !errors.Is(err, ErrNoFontLoader) {
		t.Errorf("err = %v, want ErrNoFontLoader", err)
	}
}

func TestApplyThemeStylesOnly(t *testing.T) {
	g := NewGui()
	th, err := LoadTheme([]byte("[borders.frame]\ncolor = \"#000000\"\nthickness = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.ApplyTheme(th); err != nil {
		t.Fatalf("theme without fonts needs no loader: %v", err)
	}
	if _, ok := g.Styles().Border("frame"); !ok {
		t.Error("border not registered")
	}
}

func TestLoadThemeFileMissing(t *testing.T) {
	if _, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error")
	}
}
