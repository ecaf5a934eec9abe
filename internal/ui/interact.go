package ui

// tracker reconciles immediate-mode widget calls with layout that only
// finishes after the whole tree is built. It keeps two id→rect buffers:
// widget calls hit-test this frame's pointer against the rectangles
// recorded after last frame's layout, and after this frame's layout the
// other buffer is filled for next frame. The one-frame latency is inherent
// to deferring layout; it is the contract, not a defect.
type tracker struct {
	bufs  [2]map[string]Rect
	cur   int    // index of the buffer being written this frame
	focus string // id of the focused widget, "" = none
}

func newTracker() tracker {
	return tracker{
		bufs: [2]map[string]Rect{
			make(map[string]Rect),
			make(map[string]Rect),
		},
	}
}

// swap flips the buffers and clears the new current one. The previous
// frame's rectangles become the hit-test source; whatever the new current
// buffer held is two frames old and is discarded.
func (t *tracker) swap() {
	t.cur ^= 1
	clear(t.bufs[t.cur])
}

// prevRect returns a widget's rectangle as finalized by the previous
// frame's layout. A widget built for the first time has no entry yet and
// cannot be hit until the next frame.
func (t *tracker) prevRect(id string) (Rect, bool) {
	r, ok := t.bufs[t.cur^1][id]
	return r, ok
}

// record walks a laid-out tree and stores every interactive leaf's final
// rectangle into the current buffer. Duplicate ids within one frame
// collapse onto one entry; the later-appended widget wins.
func (t *tracker) record(n *Node) {
	if n.Interactive() && n.ID != "" {
		t.bufs[t.cur][n.ID] = n.Rect()
	}
	for _, c := range n.Children {
		t.record(c)
	}
}
