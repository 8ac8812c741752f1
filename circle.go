package quadtree

import "fmt"

type Circle struct {
	Center Point
	Radius float64
}

func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

func (c Circle) Rect() Rect {
	return NewRectForCircle(c.Center, c.Radius)
}

// Overlaps is the exact test for two circles; touching circles overlap.
// The index never calls it, it is here for callers doing the narrow phase.
func (c Circle) Overlaps(other Circle) bool {
	r := c.Radius + other.Radius
	return c.Center.DistanceSq(other.Center) <= r*r
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{center: %v, radius: %g}", c.Center, c.Radius)
}
