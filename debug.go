package trellis

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-layout recomputation counts and timing.
// Only reported when Gui.debug is true.
type frameStats struct {
	styles     int
	preferred  int
	content    int
	positions  int
	layoutTime time.Duration
}

// debugLog prints layout stats to stderr.
func (g *Gui) debugLog() {
	if !g.debug {
		return
	}
	s := g.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] layout: %v | style: %d | preferred: %d | content: %d | position: %d\n",
		s.layoutTime, s.styles, s.preferred, s.content, s.positions)
	_, _ = fmt.Fprintf(os.Stderr, "[trellis] widgets: %d | pending events: %d\n",
		g.Len(), len(g.events))
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(a *arena, id WidgetID) {
	if depth := a.depth(id); depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: tree depth %d exceeds %d (%s)\n",
			depth, debugMaxTreeDepth, id)
	}
}

// debugCheckChildCount warns on stderr if a widget has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(a *arena, id WidgetID) {
	if n := len(a.get(id).children); n > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: %s has %d children (threshold %d)\n",
			id, n, debugMaxChildCount)
	}
}

// LayoutStats reports how many nodes each pass of the last Layout call
// recomputed.
type LayoutStats struct {
	Styles, Preferred, Content, Positions int
}

// LastLayoutStats returns the recomputation counts of the last Layout call.
func (g *Gui) LastLayoutStats() LayoutStats {
	return LayoutStats{
		Styles:    g.stats.styles,
		Preferred: g.stats.preferred,
		Content:   g.stats.content,
		Positions: g.stats.positions,
	}
}
