package quadtree

import (
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, n int) *QuadTree[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(int64(n)))
	tree := New[int](NewRect(Point{50, 50}, Point{150, 150}))
	for i := 0; i < n; i++ {
		c := Point{rng.Float64()*100.0 + 50.0, rng.Float64()*100.0 + 50.0}
		tree.Insert(NewCircle(c, 0.5), i)
	}
	return tree
}

func BenchmarkInsert(b *testing.B) {
	b.ReportAllocs()
	benchTree(b, b.N)
}

func BenchmarkNearby(b *testing.B) {
	tree := benchTree(b, 100000)
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := Point{rng.Float64()*100.0 + 50.0, rng.Float64()*100.0 + 50.0}
		tree.Nearby(NewRectForExtents(c, 5, 5))
	}
}

func BenchmarkSliceIndexNearby(b *testing.B) {
	index := NewSliceIndex[int]()
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		c := Point{rng.Float64()*100.0 + 50.0, rng.Float64()*100.0 + 50.0}
		index.Insert(NewCircle(c, 0.5), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := Point{rng.Float64()*100.0 + 50.0, rng.Float64()*100.0 + 50.0}
		index.Nearby(NewRectForExtents(c, 5, 5))
	}
}
