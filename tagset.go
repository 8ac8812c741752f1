package quadtree

// TagSet is a visited set keyed by tag, for callers that want each candidate
// once.
type TagSet[T comparable] struct {
	table map[T]struct{}
}

func NewTagSet[T comparable]() *TagSet[T] {
	return &TagSet[T]{table: map[T]struct{}{}}
}

func (set *TagSet[T]) Count() int {
	return len(set.table)
}

// Insert adds tag and reports whether it was not already present.
func (set *TagSet[T]) Insert(tag T) bool {
	if _, ok := set.table[tag]; ok {
		return false
	}
	set.table[tag] = struct{}{}
	return true
}

func (set *TagSet[T]) Contains(tag T) bool {
	_, ok := set.table[tag]
	return ok
}

func (set *TagSet[T]) Each(f func(tag T)) {
	for tag := range set.table {
		f(tag)
	}
}

func (set *TagSet[T]) Reset() {
	for tag := range set.table {
		delete(set.table, tag)
	}
}

// Unique returns tags without repeats, keeping the first occurrence of each.
func Unique[T comparable](tags []T) []T {
	set := NewTagSet[T]()
	out := make([]T, 0, len(tags))
	for _, tag := range tags {
		if set.Insert(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// NearbyUnique is Nearby without repeated tags.
func NearbyUnique[T comparable](index SpatialIndex[T], shape Shape) []T {
	set := NewTagSet[T]()
	var tags []T
	index.Query(shape, func(tag T) bool {
		if set.Insert(tag) {
			tags = append(tags, tag)
		}
		return true
	})
	return tags
}
