package ui

// Pointer is the per-frame mouse snapshot. Pressed and Released are edges
// (the transition happened this frame); Down is the sustained level. The
// distinction matters: buttons and checkboxes react to the press edge,
// sliders track the level so a drag keeps updating.
type Pointer struct {
	X, Y     int
	Pressed  bool
	Down     bool
	Released bool
}

// Keyboard is the per-frame keyboard snapshot consumed by the focused
// input field. Chars holds the characters typed this frame in order.
type Keyboard struct {
	Chars     []rune
	Backspace bool
	Enter     bool
	Escape    bool
}

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point is inside the rectangle. Bounds are
// half-open: the left/top edge is inside, the right/bottom edge is not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
