package ebitengui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/trellis"
)

// RunConfig holds window and loop settings for Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ClearColor fills the screen before the GUI is rendered.
	ClearColor trellis.Color
	// ScreenshotDir receives PNGs for labels queued with Gui.Screenshot.
	// Defaults to "screenshots".
	ScreenshotDir string
	// OnEvent is called for every drained event, after the Gui's own
	// callbacks. Returning an error stops the loop; ErrQuit stops it
	// without error.
	OnEvent func(trellis.Event) error
}

// ErrQuit can be returned from RunConfig.OnEvent to end Run cleanly.
var ErrQuit = errors.New("ebitengui: quit")

// Game adapts a trellis Gui to ebiten.Game. Each Update samples the mouse,
// runs interaction, lays the tree out against the window size and drains
// events. Draw renders the last layout.
type Game struct {
	gui     *trellis.Gui
	cfg     RunConfig
	sampler Sampler
	width   int
	height  int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame returns a Game for gui.
func NewGame(gui *trellis.Gui, cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	return &Game{gui: gui, cfg: cfg, width: cfg.Width, height: cfg.Height}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.gui.Update(g.sampler)
	g.gui.Layout(trellis.Size{Width: float64(g.width), Height: float64(g.height)})
	for _, e := range g.gui.DrainEvents() {
		if g.cfg.OnEvent == nil {
			continue
		}
		if err := g.cfg.OnEvent(e); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(g.cfg.ClearColor))
	g.gui.Render(NewSurface(screen), trellis.Vec2{})
	flushScreenshots(screen, g.cfg.ScreenshotDir, g.gui.TakeScreenshots())
}

// Layout implements ebiten.Game. The GUI is laid out at the outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and runs gui until the window closes or OnEvent
// returns an error.
func Run(gui *trellis.Gui, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(NewGame(gui, cfg))
}
