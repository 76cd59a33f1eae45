// Package trellis is a retained-mode UI layout and interaction engine.
//
// Trellis owns a tree of widgets (panes, vertical and horizontal boxes,
// labels and sliders), lays them out with cached dirty-flag passes, resolves
// hover, press and drag input once per frame, and queues semantic events for
// the host to drain. Drawing goes through a small [Surface] interface; the
// ebitengui and raster subpackages provide Ebitengine and software backends.
//
// # Quick start
//
// The simplest way to get started is ebitengui.Run, which creates a window
// and frame loop for you:
//
//	gui := trellis.NewGui()
//	// ... register styles, build widgets ...
//	ebitengui.Run(gui, ebitengui.RunConfig{
//		Title: "Settings", Width: 640, Height: 480,
//	})
//
// For full control, drive the frame yourself:
//
//	gui.Update(sampler)        // or UpdateInteraction
//	gui.Layout(windowSize)
//	gui.Render(surface, trellis.Vec2{})
//	for _, e := range gui.DrainEvents() { ... }
//
// # Widget tree
//
// Widgets live in an arena owned by the [Gui] and are addressed by [Widget]
// handles. Create them detached with [Gui.NewPane], [Gui.NewVBox],
// [Gui.NewHBox], [Gui.NewLabel], [Gui.NewButton] or [Gui.NewSlider], then
// attach them with [Widget.AddChild]. One widget is the root:
//
//	root := gui.SetRoot(gui.NewVBox().SetPaddingAll(10))
//	root.AddChild(gui.NewLabel("Volume"))
//	root.AddChild(gui.NewSlider().SetActionID("volume").EnableFillWidth(1))
//
// # Layout
//
// Each widget carries [DirtyFlags]. Setters mark the widget and its
// ancestors dirty; [Gui.Layout] recomputes only what is dirty or what
// depends on a changed window size. Boxes stack their children and share
// leftover space among filling children by weight; panes place children at
// absolute or relative [Position] targets anchored by [Alignment].
//
// # Styles
//
// Widgets reference fonts, text styles, backgrounds and borders by name in
// the Gui's [StyleRegistry]. Replacing a registry entry re-styles every
// widget that uses it on the next layout. [LoadTheme] reads a TOML theme.
//
// # Events
//
// A clickable widget emits [EventClick] when pressed and released while
// hovered; a slider emits [EventDrag] every frame of a drag. Events are
// delivered by [Gui.DrainEvents], to callbacks registered with [Gui.OnClick]
// and [Gui.OnDrag], and to an optional [EventStore] such as the donburi
// adapter in trellis/ecs.
package trellis
