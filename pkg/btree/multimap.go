package btree

import "cmp"

// Multimap is an ordered association from keys to values where a key may
// carry any number of values. Records with equal keys keep their insertion
// order; there is no indexed access, use the cursor and bound operations.
type Multimap[K, V any] struct {
	t *tree[Item[K, V], K]
}

// MultimapConfig configures a Multimap beyond its natural defaults.
type MultimapConfig[K, V any] struct {
	Less  LessFunc[K]
	Order int
	Hooks Hooks[Item[K, V]]
}

// NewMultimap returns an empty multimap over a naturally ordered key type.
func NewMultimap[K cmp.Ordered, V any]() *Multimap[K, V] {
	return NewMultimapWith(MultimapConfig[K, V]{Less: cmp.Less[K]})
}

// NewMultimapFunc returns an empty multimap with keys ordered by less.
func NewMultimapFunc[K, V any](less LessFunc[K]) *Multimap[K, V] {
	return NewMultimapWith(MultimapConfig[K, V]{Less: less})
}

// NewMultimapWith returns an empty multimap with explicit configuration.
func NewMultimapWith[K, V any](cfg MultimapConfig[K, V]) *Multimap[K, V] {
	return &Multimap[K, V]{t: newTree(cfg.Order, cfg.Less, func(it Item[K, V]) K { return it.Key }, true, cfg.Hooks)}
}

// Insert adds the pair unconditionally and returns the new record's cursor.
func (m *Multimap[K, V]) Insert(key K, value V) Cursor[Item[K, V], K] {
	return m.t.insertMulti(Item[K, V]{Key: key, Value: value})
}

// Erase removes every record whose key equals key and reports the count.
func (m *Multimap[K, V]) Erase(key K) int {
	return m.t.eraseKey(key)
}

// Remove erases the record under c and returns a cursor on its successor.
func (m *Multimap[K, V]) Remove(c Cursor[Item[K, V], K]) Cursor[Item[K, V], K] {
	return m.t.removeAt(c)
}

// Find returns a cursor on the first record with an equal key, or End.
func (m *Multimap[K, V]) Find(key K) Cursor[Item[K, V], K] {
	return m.t.find(key)
}

// LowerBound returns a cursor on the first record with key' >= key, or End.
func (m *Multimap[K, V]) LowerBound(key K) Cursor[Item[K, V], K] {
	return m.t.lowerBound(key)
}

// UpperBound returns a cursor on the first record with key' > key, or End.
func (m *Multimap[K, V]) UpperBound(key K) Cursor[Item[K, V], K] {
	return m.t.upperBound(key)
}

// Count reports how many records carry a key equal to key.
func (m *Multimap[K, V]) Count(key K) int {
	n := 0
	for c, stop := m.t.lowerBound(key), m.t.upperBound(key); c != stop; c = c.Next() {
		n++
	}
	return n
}

func (m *Multimap[K, V]) Contains(key K) bool { return m.t.contains(key) }
func (m *Multimap[K, V]) Size() int { return m.t.size }
func (m *Multimap[K, V]) Empty() bool { return m.t.size == 0 }
func (m *Multimap[K, V]) Clear() { m.t.clear() }
func (m *Multimap[K, V]) Begin() Cursor[Item[K, V], K] { return m.t.begin() }
func (m *Multimap[K, V]) End() Cursor[Item[K, V], K]   { return m.t.end() }

// Keys returns a lazy view over the keys in order, duplicates included.
func (m *Multimap[K, V]) Keys() *KeysView[K, V] {
	return &KeysView[K, V]{items: *newView(m.t.begin(), m.t.end())}
}

// Values returns a lazy view over the values in key order.
func (m *Multimap[K, V]) Values() *ValuesView[K, V] {
	return &ValuesView[K, V]{items: *newView(m.t.begin(), m.t.end())}
}

// Items returns a lazy view over the key-value records in order.
func (m *Multimap[K, V]) Items() *View[Item[K, V], K] {
	return newView(m.t.begin(), m.t.end())
}

// Stats snapshots the tree structure counters.
func (m *Multimap[K, V]) Stats() Stats { return m.t.stats() }
