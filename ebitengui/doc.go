// Package ebitengui runs a trellis GUI on [Ebitengine].
//
// It provides a [Surface] over an *ebiten.Image, TrueType fonts through
// Ebitengine's text/v2 package, a [Sampler] reading the mouse, and [Run],
// which creates a window and game loop:
//
//	gui := trellis.NewGui()
//	gui.Styles().SetFontLoader(ebitengui.Loader{})
//	// ... build widgets ...
//	ebitengui.Run(gui, ebitengui.RunConfig{
//		Title: "Controls", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [trellis.Gui.Update], [trellis.Gui.Layout], [trellis.Gui.Render] and
// [trellis.Gui.DrainEvents] from it:
//
//	func (g *Game) Update() error {
//		g.gui.Update(ebitengui.Sampler{})
//		g.gui.Layout(trellis.Size{Width: 640, Height: 480})
//		g.handle(g.gui.DrainEvents())
//		return nil
//	}
//	func (g *Game) Draw(s *ebiten.Image) { g.gui.Render(ebitengui.NewSurface(s), trellis.Vec2{}) }
//
// [Ebitengine]: https://ebitengine.org
package ebitengui
