package quadtree

// Shape is anything that can report a conservative axis-aligned bounding
// Rect. It is the only thing the index knows about the geometry it stores.
type Shape interface {
	Rect() Rect
}

// ShapeFunc adapts an ordinary function to a Shape.
type ShapeFunc func() Rect

func (f ShapeFunc) Rect() Rect {
	return f()
}

// taggedRect is what the index actually files: the caller's tag and the
// Rect computed from its shape at insertion time.
type taggedRect[T any] struct {
	tag  T
	rect Rect
}
