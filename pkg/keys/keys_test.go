package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mythicalcodelabs/yggdrasil/pkg/btree"
)

func TestPairLexicographic(t *testing.T) {
	less := NaturalPair[int, string]()

	tests := []struct {
		name string
		a, b Pair[int, string]
		want bool
	}{
		{name: "first decides", a: P(1, "z"), b: P(2, "a"), want: true},
		{name: "first decides reversed", a: P(2, "a"), b: P(1, "z"), want: false},
		{name: "second breaks tie", a: P(1, "a"), b: P(1, "b"), want: true},
		{name: "equal pairs", a: P(1, "a"), b: P(1, "a"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, less(tt.a, tt.b))
		})
	}
}

func TestTripleLexicographic(t *testing.T) {
	less := NaturalTriple[string, int, string]()

	assert.True(t, less(T("a", 9, "z"), T("b", 0, "a")))
	assert.True(t, less(T("a", 1, "z"), T("a", 2, "a")))
	assert.True(t, less(T("a", 1, "a"), T("a", 1, "b")))
	assert.False(t, less(T("a", 1, "a"), T("a", 1, "a")))
}

func TestCompositeKeysInTree(t *testing.T) {
	s := btree.NewSetWith(btree.SetConfig[Pair[int, int]]{Less: NaturalPair[int, int]()})

	for _, k := range []Pair[int, int]{P(2, 1), P(1, 2), P(1, 1), P(2, 0)} {
		s.Insert(k)
	}
	assert.Equal(t, []Pair[int, int]{P(1, 1), P(1, 2), P(2, 0), P(2, 1)}, s.Keys().Collect())

	// Prefix range query: every key with First == 1.
	var got []Pair[int, int]
	for c, stop := s.LowerBound(P(1, 0)), s.LowerBound(P(2, 0)); c != stop; c = c.Next() {
		got = append(got, c.Deref())
	}
	assert.Equal(t, []Pair[int, int]{P(1, 1), P(1, 2)}, got)
}

func TestTripleKeysInTree(t *testing.T) {
	s := btree.NewSetWith(btree.SetConfig[Triple[string, int, string]]{
		Less: NaturalTriple[string, int, string](),
	})
	s.Insert(T("b", 1, "x"))
	s.Insert(T("a", 2, "y"))
	s.Insert(T("a", 1, "z"))

	assert.Equal(t, T("a", 1, "z"), s.Begin().Deref())
	assert.Equal(t, 3, s.Size())
}
