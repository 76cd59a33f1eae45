package ebitengui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/trellis"
)

// Sampler reads the Ebitengine mouse. It implements trellis.PointerSampler.
type Sampler struct {
	// Offset is subtracted from the cursor position, for GUIs rendered at a
	// non-zero offset.
	Offset trellis.Vec2
}

var _ trellis.PointerSampler = Sampler{}

// SamplePointer returns the cursor position and which buttons are held.
func (s Sampler) SamplePointer() (trellis.Vec2, trellis.ButtonsDown) {
	x, y := ebiten.CursorPosition()
	return trellis.Vec2{X: float64(x) - s.Offset.X, Y: float64(y) - s.Offset.Y},
		trellis.ButtonsDown{
			Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
			Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		}
}
