package quadtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceIndex(t *testing.T) {
	re := require.New(t)
	index := NewSliceIndex[int]()
	for i, c := range fiveCircles() {
		index.Insert(c, i)
	}
	re.Equal(5, index.Count())

	circles := fiveCircles()
	re.Equal([]int{0}, index.Nearby(NewRect(Point{-0.5, -0.5}, Point{0.5, 0.5})))
	// Bounding squares of the unit circles at (0,0) and (3,3) do not touch.
	re.Equal([]int{1}, index.Nearby(circles[1]))
	re.Equal([]int{0, 1}, index.Nearby(NewRect(Point{1, 1}, Point{2, 2})))
	re.Empty(index.Nearby(Point{10, 10}))

	var seen int
	index.Query(NewRect(Point{-5, -5}, Point{5, 5}), func(int) bool {
		seen++
		return false
	})
	re.Equal(1, seen)
}

func TestSpatialIndex_QuadTreeIsSuperset(t *testing.T) {
	re := require.New(t)
	indexes := []SpatialIndex[int]{
		NewSliceIndex[int](),
		NewWithOptions[int](tenByTen(), Options{LeafCapacity: 2}),
	}
	for _, index := range indexes {
		for i, c := range fiveCircles() {
			index.Insert(c, i)
		}
	}

	for _, c := range fiveCircles() {
		exact := NearbyUnique(indexes[0], c)
		broad := NearbyUnique(indexes[1], c)
		re.Subset(broad, exact)
	}
}
