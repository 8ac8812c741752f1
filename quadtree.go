/*
Package quadtree is a broad-phase spatial index over axis-aligned bounding
rectangles.

Callers insert shapes (anything with a bounding Rect) together with a tag and
later ask which tags might be near another shape. Answers are conservative:
every stored item whose rect overlaps the query is returned, along with other
items that share a leaf with it, and an item that straddles a split line is
returned once per quadrant it was filed in. Use Unique or a TagSet when each
tag is needed once, and an exact test (such as Circle.Overlaps) to confirm
candidates.

Rects partly or entirely outside the tree bounds are clamped into the bounds
on insert and on query, so no item is ever dropped. A NaN coordinate clamps to
the bounds edge on its side: an item with NaN coordinates is filed under, and a
query with them searches, that much more of the tree.

A full leaf splits into four only when that separates its items. Items too big
or too crowded to separate stay together in a leaf past its capacity, and
leaves at MaxDepth never split.

A QuadTree is not safe for concurrent mutation. Concurrent queries without
concurrent inserts are fine.
*/
package quadtree

const (
	DefaultLeafCapacity = 8
	// Leaves at DefaultMaxDepth grow past their capacity instead of
	// splitting.
	DefaultMaxDepth = 24
)

// Options configures a QuadTree. Zero values are replaced by the defaults.
type Options struct {
	LeafCapacity int
	MaxDepth     int
}

func (opts *Options) adjust() {
	if opts.LeafCapacity <= 0 {
		opts.LeafCapacity = DefaultLeafCapacity
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
}

type QuadTree[T any] struct {
	opts  Options
	root  *node[T]
	count int
}

// New creates an empty tree over bounds with the default options.
func New[T any](bounds Rect) *QuadTree[T] {
	return NewWithOptions[T](bounds, Options{})
}

func NewWithOptions[T any](bounds Rect, opts Options) *QuadTree[T] {
	opts.adjust()
	return &QuadTree[T]{
		opts: opts,
		root: newLeaf[T](bounds, 0, opts.LeafCapacity),
	}
}

func (tree *QuadTree[T]) Bounds() Rect {
	return tree.root.rect
}

func (tree *QuadTree[T]) Options() Options {
	return tree.opts
}

// Count is the number of Insert calls, not counting duplicates filed in more
// than one quadrant.
func (tree *QuadTree[T]) Count() int {
	return tree.count
}

// Insert files tag under the bounding Rect of shape. The Rect is computed now;
// later changes to shape are not seen by the tree.
func (tree *QuadTree[T]) Insert(shape Shape, tag T) {
	rect := shape.Rect().Clamp(tree.root.rect)
	tree.root.insert(taggedRect[T]{tag: tag, rect: rect}, &tree.opts)
	tree.count++
}

// Query calls f with every candidate tag for shape, in top-left, top-right,
// bottom-left, bottom-right order. It stops early when f returns false.
func (tree *QuadTree[T]) Query(shape Shape, f SpatialIndexQuery[T]) {
	rect := shape.Rect().Clamp(tree.root.rect)
	tree.root.query(rect, f)
}

// Nearby returns a fresh slice of every candidate tag for shape. A tag can
// appear more than once.
func (tree *QuadTree[T]) Nearby(shape Shape) []T {
	var tags []T
	tree.Query(shape, func(tag T) bool {
		tags = append(tags, tag)
		return true
	})
	return tags
}

// NodeInfo describes one node during Walk.
type NodeInfo struct {
	Depth int
	Rect  Rect
	Leaf  bool
	// Items is the number of entries held by a leaf; always 0 for a branch.
	Items int
}

// Walk visits nodes in pre-order, children in Quadrant order. Returning false
// skips the children of the node just visited.
func (tree *QuadTree[T]) Walk(f func(NodeInfo) bool) {
	tree.root.walk(f)
}

type Stats struct {
	Nodes    int
	Leaves   int
	Branches int
	// Entries counts stored items including copies filed in several leaves.
	Entries  int
	MaxDepth int
	// Overfull counts leaves holding more than LeafCapacity items: leaves at
	// the depth limit and leaves whose items a split would not separate.
	Overfull int
}

func (tree *QuadTree[T]) Stats() Stats {
	var stats Stats
	tree.Walk(func(info NodeInfo) bool {
		stats.Nodes++
		if info.Depth > stats.MaxDepth {
			stats.MaxDepth = info.Depth
		}
		if !info.Leaf {
			stats.Branches++
			return true
		}
		stats.Leaves++
		stats.Entries += info.Items
		if info.Items > tree.opts.LeafCapacity {
			stats.Overfull++
		}
		return true
	})
	return stats
}
