package foreign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythicalcodelabs/yggdrasil/pkg/btree"
)

func TestRegistryCloneDrop(t *testing.T) {
	r := NewRegistry[int]()
	assert.True(t, r.Balanced())

	r.Clone(100001)
	r.Clone(100001)
	r.Clone(100002)
	assert.Equal(t, 2, r.Live(100001))
	assert.Equal(t, 1, r.Live(100002))
	assert.Equal(t, 3, r.TotalLive())

	r.Drop(100001)
	r.Drop(100001)
	r.Drop(100002)
	assert.True(t, r.Balanced())
}

func TestRegistryZeroValueIgnored(t *testing.T) {
	r := NewRegistry[int]()
	r.Clone(0)
	r.Drop(0)
	assert.True(t, r.Balanced())
	assert.Equal(t, 0, r.Live(0))
}

func TestRegistryOverReleasePanics(t *testing.T) {
	r := NewRegistry[string]()
	r.Clone("obj")
	r.Drop("obj")
	assert.Panics(t, func() { r.Drop("obj") })
}

func TestTreeHoldsOneReferencePerOccurrence(t *testing.T) {
	r := NewRegistry[int]()
	s := btree.NewSetWith(btree.SetConfig[int]{
		Less:  func(a, b int) bool { return a < b },
		Order: 4,
		Hooks: Hooks(r),
	})

	for i := 1; i <= 500; i++ {
		s.Insert(i)
	}
	assert.Equal(t, 500, r.TotalLive(), "one reference per record")

	// Duplicates are rejected by the set and hold nothing.
	s.Insert(1)
	assert.Equal(t, 500, r.TotalLive())

	for i := 1; i <= 250; i++ {
		s.Erase(i)
	}
	assert.Equal(t, 250, r.TotalLive())

	s.Clear()
	assert.True(t, r.Balanced())
}

func TestMultisetHoldsOneReferencePerDuplicate(t *testing.T) {
	r := NewRegistry[int]()
	s := btree.NewMultisetWith(btree.MultisetConfig[int]{
		Less:  func(a, b int) bool { return a < b },
		Order: 4,
		Hooks: Hooks(r),
	})

	for i := 0; i < 10; i++ {
		s.Insert(100001)
	}
	assert.Equal(t, 10, r.Live(100001), "each physical duplicate holds a reference")

	assert.Equal(t, 10, s.Erase(100001))
	assert.True(t, r.Balanced())
}

func TestReferenceBalanceUnderChurn(t *testing.T) {
	// Hammer a map with mixed insert/overwrite/delete/insert rounds over a
	// fixed population of foreign keys and values, then clear. Every
	// object's reference delta must return to zero.
	kr := NewRegistry[int]()
	vr := NewRegistry[int]()
	m := btree.NewMapWith(btree.MapConfig[int, int]{
		Less:  func(a, b int) bool { return a < b },
		Order: 4,
		Hooks: ItemHooks(kr, vr),
	})

	keys := make([]int, 10)
	values := make([]int, 10)
	for i := range keys {
		keys[i] = 100000 + i
		values[i] = 200000 + i
	}

	for round := 0; round < 100; round++ {
		for i, key := range keys {
			value := values[i]
			m.Insert(key, key)
			m.Set(key, value)
			m.Insert(key, key)
			require.NoError(t, m.Delete(key))
			m.Insert(key, value)
			m.Set(key, value)
			m.Insert(key, key)
		}
	}

	// One record per key survives the churn, holding one key reference
	// and one value reference.
	require.Equal(t, len(keys), m.Size())
	for i, key := range keys {
		assert.Equal(t, 1, kr.Live(key), "key %d must be held exactly once", key)
		assert.Equal(t, 1, vr.Live(values[i]), "value %d must be held exactly once", values[i])
	}

	m.Clear()
	assert.True(t, kr.Balanced(), "key references must balance after clear")
	assert.True(t, vr.Balanced(), "value references must balance after clear")
}
