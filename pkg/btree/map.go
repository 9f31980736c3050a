package btree

import "cmp"

// Map is an ordered association from unique keys to values.
type Map[K, V any] struct {
	t *tree[Item[K, V], K]
}

// MapConfig configures a Map beyond its natural defaults.
type MapConfig[K, V any] struct {
	// Less orders the keys; required. Values never participate in ordering.
	Less LessFunc[K]
	// Order is the branching factor; DefaultOrder when zero.
	Order int
	// Hooks observe record creation and destruction.
	Hooks Hooks[Item[K, V]]
}

// NewMap returns an empty map over a naturally ordered key type.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return NewMapWith(MapConfig[K, V]{Less: cmp.Less[K]})
}

// NewMapFunc returns an empty map with keys ordered by less.
func NewMapFunc[K, V any](less LessFunc[K]) *Map[K, V] {
	return NewMapWith(MapConfig[K, V]{Less: less})
}

// NewMapWith returns an empty map with explicit configuration.
func NewMapWith[K, V any](cfg MapConfig[K, V]) *Map[K, V] {
	return &Map[K, V]{t: newTree(cfg.Order, cfg.Less, func(it Item[K, V]) K { return it.Key }, false, cfg.Hooks)}
}

// Insert adds the pair unless the key is already present, in which case the
// existing record is left untouched and its cursor returned with false.
func (m *Map[K, V]) Insert(key K, value V) (Cursor[Item[K, V], K], bool) {
	return m.t.insertUnique(Item[K, V]{Key: key, Value: value})
}

// InsertOrAssign adds the pair, or overwrites the value of an existing equal
// key in place. The bool reports whether a new record was inserted.
func (m *Map[K, V]) InsertOrAssign(key K, value V) (Cursor[Item[K, V], K], bool) {
	c, inserted := m.t.insertUnique(Item[K, V]{Key: key, Value: value})
	if !inserted {
		m.t.replaceAt(c, Item[K, V]{Key: key, Value: value})
	}
	return c, inserted
}

// Get is the indexed read: it returns the value stored under key, inserting a
// zero value first when the key is missing. Use Find when insertion on a miss
// is not wanted.
func (m *Map[K, V]) Get(key K) V {
	var zero V
	c, _ := m.t.insertUnique(Item[K, V]{Key: key, Value: zero})
	return c.Deref().Value
}

// Set stores value under key, overwriting any existing value.
func (m *Map[K, V]) Set(key K, value V) {
	m.InsertOrAssign(key, value)
}

// Delete removes key. It returns ErrKeyNotFound, leaving the map unchanged,
// when no such key exists.
func (m *Map[K, V]) Delete(key K) error {
	if m.t.eraseKey(key) == 0 {
		return ErrKeyNotFound
	}
	return nil
}

// Erase removes key if present, reporting 0 or 1.
func (m *Map[K, V]) Erase(key K) int {
	return m.t.eraseKey(key)
}

// Remove erases the record under c and returns a cursor on its successor.
func (m *Map[K, V]) Remove(c Cursor[Item[K, V], K]) Cursor[Item[K, V], K] {
	return m.t.removeAt(c)
}

// Find returns a cursor on key's record, or End.
func (m *Map[K, V]) Find(key K) Cursor[Item[K, V], K] {
	return m.t.find(key)
}

// LowerBound returns a cursor on the first record with key' >= key, or End.
func (m *Map[K, V]) LowerBound(key K) Cursor[Item[K, V], K] {
	return m.t.lowerBound(key)
}

// UpperBound returns a cursor on the first record with key' > key, or End.
func (m *Map[K, V]) UpperBound(key K) Cursor[Item[K, V], K] {
	return m.t.upperBound(key)
}

func (m *Map[K, V]) Contains(key K) bool { return m.t.contains(key) }
func (m *Map[K, V]) Size() int { return m.t.size }
func (m *Map[K, V]) Empty() bool { return m.t.size == 0 }
func (m *Map[K, V]) Clear() { m.t.clear() }
func (m *Map[K, V]) Begin() Cursor[Item[K, V], K] { return m.t.begin() }
func (m *Map[K, V]) End() Cursor[Item[K, V], K] { return m.t.end() }

// Keys returns a lazy view over the keys in order.
func (m *Map[K, V]) Keys() *KeysView[K, V] {
	return &KeysView[K, V]{items: *newView(m.t.begin(), m.t.end())}
}

// Values returns a lazy view over the values in key order.
func (m *Map[K, V]) Values() *ValuesView[K, V] {
	return &ValuesView[K, V]{items: *newView(m.t.begin(), m.t.end())}
}

// Items returns a lazy view over the key-value records in order.
func (m *Map[K, V]) Items() *View[Item[K, V], K] {
	return newView(m.t.begin(), m.t.end())
}

// Stats snapshots the tree structure counters.
func (m *Map[K, V]) Stats() Stats { return m.t.stats() }
