package quadtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoint_Lerp(t *testing.T) {
	re := require.New(t)
	a := Point{-4, 2}
	b := Point{4, 6}
	re.Equal(Point{0, 4}, a.Lerp(b, 0.5))
	re.Equal(a, a.Lerp(b, 0))
	re.Equal(b, a.Lerp(b, 1))
}

func TestPoint_Distance(t *testing.T) {
	re := require.New(t)
	re.Equal(25.0, Point{0, 0}.DistanceSq(Point{3, 4}))
	re.Equal(5.0, Point{0, 0}.Distance(Point{3, 4}))
}

func TestPoint_Rect(t *testing.T) {
	re := require.New(t)
	r := Point{1, 2}.Rect()
	re.Zero(r.Area())
	re.True(r.ContainsPoint(Point{1, 2}))
	re.True(r.Intersects(NewRect(Point{0, 0}, Point{1, 2})))
}
