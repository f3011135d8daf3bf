package dialog

// Rect is an axis-aligned region of the host surface, measured in cells.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rect by the given margin on each side. A margin larger
// than the rect collapses it to zero size at its center.
func (r Rect) Inset(m Margin) Rect {
	out := Rect{
		X: r.X + m.Left,
		Y: r.Y + m.Top,
		W: r.W - m.Left - m.Right,
		H: r.H - m.Top - m.Bottom,
	}
	if out.W < 0 {
		out.X = r.X + r.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = r.Y + r.H/2
		out.H = 0
	}
	return out
}

// Margin is a per-side inset applied to the mask rect. Useful when the
// host surface has chrome (status bars, transparent padding) the mask
// should not cover.
type Margin struct {
	Left, Top, Right, Bottom int
}

// UniformMargin returns a margin with the same inset on every side.
func UniformMargin(n int) Margin {
	return Margin{Left: n, Top: n, Right: n, Bottom: n}
}
