package quadtree

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned bounding rectangle. TopLeft must be <= BottomRight
// on both axes; constructors do not check this and predicates on a malformed
// Rect give unspecified answers.
type Rect struct {
	TopLeft, BottomRight Point
}

func NewRect(topLeft, bottomRight Point) Rect {
	return Rect{topLeft, bottomRight}
}

func NewRectForExtents(c Point, hw, hh float64) Rect {
	return Rect{
		TopLeft:     Point{c.X - hw, c.Y - hh},
		BottomRight: Point{c.X + hw, c.Y + hh},
	}
}

func NewRectForCircle(c Point, r float64) Rect {
	return NewRectForExtents(c, r, r)
}

// Rect lets a Rect be used anywhere a Shape is expected.
func (r Rect) Rect() Rect {
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("[(%v) (%v)]", r.TopLeft, r.BottomRight)
}

// IsValid reports whether the corners are ordered.
func (r Rect) IsValid() bool {
	return r.TopLeft.X <= r.BottomRight.X && r.TopLeft.Y <= r.BottomRight.Y
}

// OverlapsX reports whether the closed x projections of a and b intersect.
// Touching edges overlap.
func (a Rect) OverlapsX(b Rect) bool {
	return a.TopLeft.X <= b.BottomRight.X && b.TopLeft.X <= a.BottomRight.X
}

// OverlapsY is OverlapsX for the y axis.
func (a Rect) OverlapsY(b Rect) bool {
	return a.TopLeft.Y <= b.BottomRight.Y && b.TopLeft.Y <= a.BottomRight.Y
}

// Intersects is true when a and b overlap on both axes, including when they
// only share an edge or a corner.
func (a Rect) Intersects(b Rect) bool {
	return a.OverlapsX(b) && a.OverlapsY(b)
}

func (r Rect) Contains(other Rect) bool {
	return r.TopLeft.X <= other.TopLeft.X && r.BottomRight.X >= other.BottomRight.X &&
		r.TopLeft.Y <= other.TopLeft.Y && r.BottomRight.Y >= other.BottomRight.Y
}

func (r Rect) ContainsPoint(p Point) bool {
	return r.TopLeft.X <= p.X && r.BottomRight.X >= p.X &&
		r.TopLeft.Y <= p.Y && r.BottomRight.Y >= p.Y
}

func (r Rect) Center() Point {
	return r.TopLeft.Lerp(r.BottomRight, 0.5)
}

func (r Rect) Width() float64 {
	return r.BottomRight.X - r.TopLeft.X
}

func (r Rect) Height() float64 {
	return r.BottomRight.Y - r.TopLeft.Y
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Clamp pulls r into bounds. A rect lying entirely outside bounds collapses
// onto the nearest edge or corner of bounds. A NaN coordinate is replaced by
// the matching edge of bounds, so a rect with NaN in it covers the bounds on
// that side.
func (r Rect) Clamp(bounds Rect) Rect {
	return Rect{
		TopLeft: Point{
			clampNaN(r.TopLeft.X, bounds.TopLeft.X, bounds.BottomRight.X, bounds.TopLeft.X),
			clampNaN(r.TopLeft.Y, bounds.TopLeft.Y, bounds.BottomRight.Y, bounds.TopLeft.Y),
		},
		BottomRight: Point{
			clampNaN(r.BottomRight.X, bounds.TopLeft.X, bounds.BottomRight.X, bounds.BottomRight.X),
			clampNaN(r.BottomRight.Y, bounds.TopLeft.Y, bounds.BottomRight.Y, bounds.BottomRight.Y),
		},
	}
}

func clampNaN(f, min, max, nan float64) float64 {
	if math.IsNaN(f) {
		return nan
	}
	return Clamp(f, min, max)
}

// Quadrant names one quarter of a split Rect. The values index the array
// returned by Quadrants.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// Quadrants bisects r on both axes. Neighbouring quadrants share the same
// midpoint coordinates exactly, so there are no gaps between them.
func (r Rect) Quadrants() [4]Rect {
	l, t := r.TopLeft.X, r.TopLeft.Y
	rt, b := r.BottomRight.X, r.BottomRight.Y
	mx := l + (rt-l)/2
	my := t + (b-t)/2

	return [4]Rect{
		TopLeft:     {Point{l, t}, Point{mx, my}},
		TopRight:    {Point{mx, t}, Point{rt, my}},
		BottomLeft:  {Point{l, my}, Point{mx, b}},
		BottomRight: {Point{mx, my}, Point{rt, b}},
	}
}
