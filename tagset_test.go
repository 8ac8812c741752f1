package quadtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type thing struct {
	value string
}

func TestTagSet(t *testing.T) {
	re := require.New(t)
	set := NewTagSet[thing]()

	one := thing{value: "one"}
	re.True(set.Insert(one))
	re.False(set.Insert(one))
	re.True(set.Contains(one))
	re.Equal(1, set.Count())

	two := thing{value: "two"}
	re.False(set.Contains(two))
	re.True(set.Insert(two))
	re.Equal(2, set.Count())

	seen := map[string]bool{}
	set.Each(func(tag thing) {
		seen[tag.value] = true
	})
	re.Equal(map[string]bool{"one": true, "two": true}, seen)

	set.Reset()
	re.Zero(set.Count())
	re.False(set.Contains(one))
}

func TestUnique(t *testing.T) {
	re := require.New(t)
	re.Equal([]int{3, 1, 2}, Unique([]int{3, 1, 3, 2, 1, 3}))
	re.Empty(Unique[int](nil))
}

func TestNearbyUnique(t *testing.T) {
	re := require.New(t)
	tree := NewWithOptions[int](NewRect(Point{-5, -5}, Point{5, 5}), Options{LeafCapacity: 1})
	// Spans both split lines, so it is filed in all four quadrants.
	tree.Insert(NewRect(Point{-1, -1}, Point{1, 1}), 0)
	tree.Insert(NewRect(Point{2, 2}, Point{3, 3}), 1)

	all := NewRect(Point{-5, -5}, Point{5, 5})
	re.Greater(len(tree.Nearby(all)), 2)
	re.ElementsMatch([]int{0, 1}, NearbyUnique[int](tree, all))
}
