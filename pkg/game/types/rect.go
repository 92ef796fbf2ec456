package types

import "math"

// Rect is an axis-aligned box with its origin at the top-left corner and y growing downward.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports a strict overlap. Boxes that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// OverlapsHorizontally reports a strict overlap of the x extents only.
func (r Rect) OverlapsHorizontally(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X
}

// Inflate grows the box by margin on every side.
func (r Rect) Inflate(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// AlignBefore returns the largest start such that start+size does not pass edge.
// It absorbs the rounding of edge-size so that a box placed against an edge
// never strictly overlaps what lies beyond it.
func AlignBefore(edge, size float64) float64 {
	start := edge - size
	for start+size > edge {
		start = math.Nextafter(start, math.Inf(-1))
	}
	return start
}
