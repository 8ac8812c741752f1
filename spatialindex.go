package quadtree

// SpatialIndexQuery is called once per candidate tag. Returning false stops
// the query.
type SpatialIndexQuery[T any] func(tag T) bool

// SpatialIndex is implemented by QuadTree and SliceIndex.
type SpatialIndex[T any] interface {
	Count() int
	Insert(shape Shape, tag T)
	Query(shape Shape, f SpatialIndexQuery[T])
	Nearby(shape Shape) []T
}

var (
	_ SpatialIndex[int] = (*QuadTree[int])(nil)
	_ SpatialIndex[int] = (*SliceIndex[int])(nil)
)

// SliceIndex keeps every item in one slice and answers queries by testing
// each stored Rect against the query Rect. It returns exactly the items whose
// rects intersect the query, so any broad phase must return a superset of it.
type SliceIndex[T any] struct {
	items []taggedRect[T]
}

func NewSliceIndex[T any]() *SliceIndex[T] {
	return &SliceIndex[T]{}
}

func (index *SliceIndex[T]) Count() int {
	return len(index.items)
}

func (index *SliceIndex[T]) Insert(shape Shape, tag T) {
	index.items = append(index.items, taggedRect[T]{tag: tag, rect: shape.Rect()})
}

func (index *SliceIndex[T]) Query(shape Shape, f SpatialIndexQuery[T]) {
	rect := shape.Rect()
	for _, item := range index.items {
		if item.rect.Intersects(rect) && !f(item.tag) {
			return
		}
	}
}

func (index *SliceIndex[T]) Nearby(shape Shape) []T {
	var tags []T
	index.Query(shape, func(tag T) bool {
		tags = append(tags, tag)
		return true
	})
	return tags
}
