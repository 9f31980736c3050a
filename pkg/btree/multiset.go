package btree

import "cmp"

// Multiset is an ordered collection of keys that may repeat. Duplicates keep
// their insertion order: a new key lands after every equal key already
// present, so the equal range [LowerBound(k), UpperBound(k)) enumerates the
// duplicates oldest first.
type Multiset[K any] struct {
	t *tree[K, K]
}

// MultisetConfig configures a Multiset beyond its natural defaults.
type MultisetConfig[K any] struct {
	Less  LessFunc[K]
	Order int
	Hooks Hooks[K]
}

// NewMultiset returns an empty multiset over a naturally ordered key type.
func NewMultiset[K cmp.Ordered]() *Multiset[K] {
	return NewMultisetWith(MultisetConfig[K]{Less: cmp.Less[K]})
}

// NewMultisetFunc returns an empty multiset ordered by less.
func NewMultisetFunc[K any](less LessFunc[K]) *Multiset[K] {
	return NewMultisetWith(MultisetConfig[K]{Less: less})
}

// NewMultisetWith returns an empty multiset with explicit configuration.
func NewMultisetWith[K any](cfg MultisetConfig[K]) *Multiset[K] {
	return &Multiset[K]{t: newTree(cfg.Order, cfg.Less, func(k K) K { return k }, true, cfg.Hooks)}
}

// Insert adds key unconditionally and returns the new record's cursor.
func (s *Multiset[K]) Insert(key K) Cursor[K, K] {
	return s.t.insertMulti(key)
}

// Erase removes every key equal to key and reports how many were removed.
func (s *Multiset[K]) Erase(key K) int {
	return s.t.eraseKey(key)
}

// Remove erases the record under c and returns a cursor on its successor.
func (s *Multiset[K]) Remove(c Cursor[K, K]) Cursor[K, K] {
	return s.t.removeAt(c)
}

// Find returns a cursor on the first key equal to key, or End.
func (s *Multiset[K]) Find(key K) Cursor[K, K] {
	return s.t.find(key)
}

// LowerBound returns a cursor on the first key >= key, or End.
func (s *Multiset[K]) LowerBound(key K) Cursor[K, K] {
	return s.t.lowerBound(key)
}

// UpperBound returns a cursor on the first key > key, or End.
func (s *Multiset[K]) UpperBound(key K) Cursor[K, K] {
	return s.t.upperBound(key)
}

// Count reports how many keys equal key.
func (s *Multiset[K]) Count(key K) int {
	n := 0
	for c, stop := s.t.lowerBound(key), s.t.upperBound(key); c != stop; c = c.Next() {
		n++
	}
	return n
}

func (s *Multiset[K]) Contains(key K) bool { return s.t.contains(key) }
func (s *Multiset[K]) Size() int { return s.t.size }
func (s *Multiset[K]) Empty() bool { return s.t.size == 0 }
func (s *Multiset[K]) Clear() { s.t.clear() }
func (s *Multiset[K]) Begin() Cursor[K, K] { return s.t.begin() }
func (s *Multiset[K]) End() Cursor[K, K] { return s.t.end() }

// Keys returns a lazy view over the keys in order.
func (s *Multiset[K]) Keys() *View[K, K] {
	return newView(s.t.begin(), s.t.end())
}

// Stats snapshots the tree structure counters.
func (s *Multiset[K]) Stats() Stats { return s.t.stats() }
