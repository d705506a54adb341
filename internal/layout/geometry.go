package layout

// Rect is a screen region in character cells.
type Rect struct {
	X, Y, W, H int
}

// Areas subdivides bounds into the mode's pane rectangles, in slot order.
// The partition is exhaustive with no gaps and no overlaps; integer
// remainders go to the last region along each axis (bottom and right).
func (m Mode) Areas(bounds Rect) []Rect {
	switch m {
	case SplitHorizontal:
		top, bottom := bounds.splitRows()
		return []Rect{top, bottom}
	case SplitVertical:
		left, right := bounds.splitCols()
		return []Rect{left, right}
	case Grid2x2:
		top, bottom := bounds.splitRows()
		tl, tr := top.splitCols()
		bl, br := bottom.splitCols()
		return []Rect{tl, tr, bl, br}
	case Grid1x2:
		top, bottom := bounds.splitRows()
		bl, br := bottom.splitCols()
		return []Rect{top, bl, br}
	case Grid2x1:
		left, right := bounds.splitCols()
		rt, rb := right.splitRows()
		return []Rect{left, rt, rb}
	default:
		return []Rect{bounds}
	}
}

// splitRows halves r into top and bottom; an odd row goes to the bottom.
func (r Rect) splitRows() (Rect, Rect) {
	h := r.H / 2
	top := Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	bottom := Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, bottom
}

// splitCols halves r into left and right; an odd column goes to the right.
func (r Rect) splitCols() (Rect, Rect) {
	w := r.W / 2
	left := Rect{X: r.X, Y: r.Y, W: w, H: r.H}
	right := Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
	return left, right
}
