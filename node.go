package quadtree

// node is either a leaf holding items or a branch owning exactly four
// children, one per Quadrant. children is nil for a leaf; items is nil for a
// branch. A leaf becomes a branch at most once and never goes back.
type node[T any] struct {
	rect     Rect
	depth    int
	items    []taggedRect[T]
	children *[4]*node[T]
	// hold lifts the split threshold of a leaf above LeafCapacity after a
	// refused split, and for a child that started out overfull.
	hold int
}

func newLeaf[T any](rect Rect, depth, capacity int) *node[T] {
	return &node[T]{
		rect:  rect,
		depth: depth,
		items: make([]taggedRect[T], 0, capacity),
	}
}

func (n *node[T]) isLeaf() bool {
	return n.children == nil
}

func (n *node[T]) capacity(opts *Options) int {
	return max(opts.LeafCapacity, n.hold)
}

func (n *node[T]) insert(item taggedRect[T], opts *Options) {
	if !n.isLeaf() {
		n.route(item, opts)
		return
	}

	full := len(n.items) >= n.capacity(opts)
	n.items = append(n.items, item)
	if !full || n.depth >= opts.MaxDepth {
		return
	}
	if !n.split(opts) {
		n.hold = 2 * len(n.items)
	}
}

// split turns an overfull leaf into a branch and files its items into the new
// children. Items straddling a split line land in every child they touch.
//
// A split is refused when some child would receive every item, or when the
// children would hold more than twice as many entries as the leaf.
func (n *node[T]) split(opts *Options) bool {
	quadrants := n.rect.Quadrants()
	if debug {
		assert(partitions(n.rect, quadrants), "quadrants do not partition ", n.rect)
	}

	sets := make([]quadrantSet, len(n.items))
	var counts [4]int
	var entries int
	for i, item := range n.items {
		sets[i] = quadrantsOverlapping(quadrants[TopLeft], quadrants[BottomRight], item.rect)
		for q := range counts {
			if sets[i].has(Quadrant(q)) {
				counts[q]++
				entries++
			}
		}
	}
	if entries > 2*len(n.items) {
		return false
	}
	for _, count := range counts {
		if count == len(n.items) {
			return false
		}
	}

	var children [4]*node[T]
	for q, rect := range quadrants {
		children[q] = newLeaf[T](rect, n.depth+1, max(counts[q], opts.LeafCapacity))
	}
	for i, item := range n.items {
		for q, child := range children {
			if sets[i].has(Quadrant(q)) {
				child.items = append(child.items, item)
			}
		}
	}
	for _, child := range children {
		if len(child.items) > opts.LeafCapacity {
			child.hold = len(child.items)
		}
	}

	n.items = nil
	n.hold = 0
	n.children = &children
	return true
}

func (n *node[T]) route(item taggedRect[T], opts *Options) {
	set := n.overlapping(item.rect)
	for q, child := range n.children {
		if set.has(Quadrant(q)) {
			child.insert(item, opts)
		}
	}
}

// quadrantSet is a bit set indexed by Quadrant.
type quadrantSet uint8

func (s quadrantSet) has(q Quadrant) bool {
	return s&(1<<q) != 0
}

// overlapping returns the children of a branch whose rects overlap r.
func (n *node[T]) overlapping(r Rect) quadrantSet {
	return quadrantsOverlapping(n.children[TopLeft].rect, n.children[BottomRight].rect, r)
}

// quadrantsOverlapping returns the quadrants overlapping r, given the top-left
// and bottom-right quadrants of a split. The two quadrants of a row share a y
// range and the two of a column share an x range, so four axis tests decide
// all four quadrants independently.
func quadrantsOverlapping(tl, br Rect, r Rect) quadrantSet {
	top := tl.OverlapsY(r)
	bottom := br.OverlapsY(r)
	left := tl.OverlapsX(r)
	right := br.OverlapsX(r)

	var set quadrantSet
	if top && left {
		set |= 1 << TopLeft
	}
	if top && right {
		set |= 1 << TopRight
	}
	if bottom && left {
		set |= 1 << BottomLeft
	}
	if bottom && right {
		set |= 1 << BottomRight
	}
	return set
}

// query calls f for every tag stored in a leaf reachable through children
// overlapping r. Leaf items are not filtered against r. It returns false once
// f has asked to stop.
func (n *node[T]) query(r Rect, f SpatialIndexQuery[T]) bool {
	if n.isLeaf() {
		for _, item := range n.items {
			if !f(item.tag) {
				return false
			}
		}
		return true
	}

	set := n.overlapping(r)
	for q, child := range n.children {
		if set.has(Quadrant(q)) && !child.query(r, f) {
			return false
		}
	}
	return true
}

func (n *node[T]) walk(f func(NodeInfo) bool) {
	info := NodeInfo{
		Depth: n.depth,
		Rect:  n.rect,
		Leaf:  n.isLeaf(),
		Items: len(n.items),
	}
	if !f(info) || n.isLeaf() {
		return
	}
	for _, child := range n.children {
		child.walk(f)
	}
}

// partitions reports whether quadrants tile parent exactly: outer corners
// match the parent and inner edges meet on one shared midpoint.
func partitions(parent Rect, quadrants [4]Rect) bool {
	tl, tr, bl, br := quadrants[TopLeft], quadrants[TopRight], quadrants[BottomLeft], quadrants[BottomRight]
	mid := tl.BottomRight

	return tl.TopLeft.Equal(parent.TopLeft) &&
		br.BottomRight.Equal(parent.BottomRight) &&
		tr.TopLeft.Equal(Point{mid.X, parent.TopLeft.Y}) &&
		tr.BottomRight.Equal(Point{parent.BottomRight.X, mid.Y}) &&
		bl.TopLeft.Equal(Point{parent.TopLeft.X, mid.Y}) &&
		bl.BottomRight.Equal(Point{mid.X, parent.BottomRight.Y}) &&
		br.TopLeft.Equal(mid)
}
