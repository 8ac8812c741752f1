package quadtree

import (
	"fmt"
	"math"
)

// Point is a location in the plane. Y grows downward, so "top" means the
// smaller Y value.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Mult(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

func (p Point) Lerp(other Point, t float64) Point {
	return p.Mult(1.0 - t).Add(other.Mult(t))
}

func (p Point) DistanceSq(other Point) float64 {
	d := p.Sub(other)
	return d.Dot(d)
}

func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.DistanceSq(other))
}

// Rect returns the zero-area rectangle at p.
func (p Point) Rect() Rect {
	return Rect{p, p}
}

func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}
