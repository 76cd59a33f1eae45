package trellis

// syntheticPointerEvent represents a single injected pointer sample.
// Coordinates are in root space, the same space UpdateInteraction uses.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a left-button press at (x, y). Each queued event
// replaces the host sample for one Update call.
func (g *Gui) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (g *Gui) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a pointer move with the button up.
func (g *Gui) InjectHover(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a left-button release at (x, y).
func (g *Gui) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (g *Gui) InjectClick(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames; the minimum is 2.
func (g *Gui) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (g *Gui) PendingInjections() int {
	return len(g.injectQueue)
}

// popInjected pops one event from the inject queue. ok is false when the
// queue is empty and the host sample should be used.
func (g *Gui) popInjected() (pos Vec2, down ButtonsDown, ok bool) {
	if len(g.injectQueue) == 0 {
		return Vec2{}, ButtonsDown{}, false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return Vec2{evt.x, evt.y}, ButtonsDown{Left: evt.pressed}, true
}
