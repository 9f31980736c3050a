package btree

import "cmp"

// Set is an ordered collection of unique keys.
type Set[K any] struct {
	t *tree[K, K]
}

// SetConfig configures a Set beyond its natural defaults.
type SetConfig[K any] struct {
	// Less orders the keys; required.
	Less LessFunc[K]
	// Order is the branching factor; DefaultOrder when zero.
	Order int
	// Hooks observe record creation and destruction.
	Hooks Hooks[K]
}

// NewSet returns an empty set over a naturally ordered key type.
func NewSet[K cmp.Ordered]() *Set[K] {
	return NewSetWith(SetConfig[K]{Less: cmp.Less[K]})
}

// NewSetFunc returns an empty set ordered by less.
func NewSetFunc[K any](less LessFunc[K]) *Set[K] {
	return NewSetWith(SetConfig[K]{Less: less})
}

// NewSetWith returns an empty set with explicit configuration.
func NewSetWith[K any](cfg SetConfig[K]) *Set[K] {
	return &Set[K]{t: newTree(cfg.Order, cfg.Less, func(k K) K { return k }, false, cfg.Hooks)}
}

// Insert adds key. If an equal key is already present the set is unchanged
// and the existing record's cursor is returned with false.
func (s *Set[K]) Insert(key K) (Cursor[K, K], bool) {
	return s.t.insertUnique(key)
}

// Erase removes key if present, reporting 0 or 1.
func (s *Set[K]) Erase(key K) int {
	return s.t.eraseKey(key)
}

// Remove erases the record under c and returns a cursor on its successor.
func (s *Set[K]) Remove(c Cursor[K, K]) Cursor[K, K] {
	return s.t.removeAt(c)
}

// Find returns a cursor on key, or End.
func (s *Set[K]) Find(key K) Cursor[K, K] {
	return s.t.find(key)
}

// LowerBound returns a cursor on the first key >= key, or End.
func (s *Set[K]) LowerBound(key K) Cursor[K, K] {
	return s.t.lowerBound(key)
}

// UpperBound returns a cursor on the first key > key, or End.
func (s *Set[K]) UpperBound(key K) Cursor[K, K] {
	return s.t.upperBound(key)
}

func (s *Set[K]) Contains(key K) bool { return s.t.contains(key) }
func (s *Set[K]) Size() int { return s.t.size }
func (s *Set[K]) Empty() bool { return s.t.size == 0 }
func (s *Set[K]) Clear() { s.t.clear() }
func (s *Set[K]) Begin() Cursor[K, K] { return s.t.begin() }
func (s *Set[K]) End() Cursor[K, K] { return s.t.end() }

// Keys returns a lazy view over the keys in order.
func (s *Set[K]) Keys() *View[K, K] {
	return newView(s.t.begin(), s.t.end())
}

// Stats snapshots the tree structure counters.
func (s *Set[K]) Stats() Stats { return s.t.stats() }
