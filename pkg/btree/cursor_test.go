package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTraversal(t *testing.T) {
	// A small order forces several levels, so traversal has to climb in
	// and out of internal nodes.
	s := NewSetWith(SetConfig[int]{Less: func(a, b int) bool { return a < b }, Order: 4})
	const n = 200
	for i := n - 1; i >= 0; i-- {
		s.Insert(i)
	}

	c := s.Begin()
	for i := 0; i < n; i++ {
		require.NotEqual(t, s.End(), c)
		assert.Equal(t, i, c.Deref())
		c = c.Next()
	}
	assert.Equal(t, s.End(), c)

	for i := n - 1; i >= 0; i-- {
		c = c.Prev()
		assert.Equal(t, i, c.Deref())
	}
	assert.Equal(t, s.Begin(), c)
}

func TestCursorRoundTrip(t *testing.T) {
	s := NewSetWith(SetConfig[int]{Less: func(a, b int) bool { return a < b }, Order: 4})
	for i := 0; i < 150; i++ {
		s.Insert(i * 3)
	}

	// advance-then-retreat returns to the same position everywhere,
	// including across node boundaries.
	for c := s.Begin(); c != s.End(); c = c.Next() {
		assert.Equal(t, c, c.Next().Prev())
	}
	assert.Equal(t, s.Begin(), s.Begin().Next().Prev())
}

func TestCursorEndSentinel(t *testing.T) {
	s := NewSet[int]()
	assert.Equal(t, s.Begin(), s.End(), "begin equals end on an empty tree")

	s.Insert(1)
	assert.NotEqual(t, s.Begin(), s.End())

	// Retreating from end yields the largest record.
	s.Insert(2)
	s.Insert(3)
	assert.Equal(t, 3, s.End().Prev().Deref())
}

func TestCursorDeref(t *testing.T) {
	m := NewMap[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")

	c := m.Find(2)
	it := c.Deref()
	assert.Equal(t, 2, it.Key)
	assert.Equal(t, "two", it.Value)

	// Dereferencing is repeatable and does not move the cursor.
	assert.Equal(t, it, c.Deref())
	assert.Equal(t, it, c.Deref())
}

func TestCursorPreconditionPanics(t *testing.T) {
	s := NewSet[int]()
	s.Insert(1)

	assert.Panics(t, func() { s.End().Deref() }, "deref of end must panic")
	assert.Panics(t, func() { s.End().Next() }, "advance of end must panic")
	assert.Panics(t, func() { s.Begin().Prev() }, "retreat from begin must panic")
	assert.Panics(t, func() { s.Remove(s.End()) }, "remove of end must panic")

	empty := NewSet[int]()
	assert.Panics(t, func() { empty.End().Prev() }, "retreat on an empty tree must panic")

	other := NewSet[int]()
	other.Insert(1)
	assert.Panics(t, func() { other.Remove(s.Find(1)) }, "cursor from another tree must panic")
}

func TestCursorOnInternalNode(t *testing.T) {
	s := NewSetWith(SetConfig[int]{Less: func(a, b int) bool { return a < b }, Order: 4})
	for i := 0; i < 50; i++ {
		s.Insert(i)
	}

	// Find lands on separators for keys promoted out of the leaves; both
	// directions must step through the adjacent subtrees.
	root := s.t.root
	require.False(t, root.leaf())
	sep := s.t.keyOf(root.items[0])

	c := s.Find(sep)
	assert.Same(t, root, c.node)
	assert.Equal(t, sep+1, c.Next().Deref())
	assert.Equal(t, sep-1, c.Prev().Deref())
}
