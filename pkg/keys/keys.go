// Package keys builds comparators for composite keys. Tuples of up to three
// ordered components compare lexicographically: the first component decides,
// the next breaks the tie.
package keys

import (
	"cmp"

	"github.com/mythicalcodelabs/yggdrasil/pkg/btree"
)

// Natural returns the < ordering of an ordered key type.
func Natural[K cmp.Ordered]() btree.LessFunc[K] {
	return cmp.Less[K]
}

// Pair is a two-component composite key.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a three-component composite key.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// P builds a Pair.
func P[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// T builds a Triple.
func T[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// PairLess composes component orderings into a lexicographic pair ordering.
func PairLess[A, B any](a btree.LessFunc[A], b btree.LessFunc[B]) btree.LessFunc[Pair[A, B]] {
	return func(x, y Pair[A, B]) bool {
		if a(x.First, y.First) {
			return true
		}
		if a(y.First, x.First) {
			return false
		}
		return b(x.Second, y.Second)
	}
}

// TripleLess composes component orderings into a lexicographic triple
// ordering.
func TripleLess[A, B, C any](a btree.LessFunc[A], b btree.LessFunc[B], c btree.LessFunc[C]) btree.LessFunc[Triple[A, B, C]] {
	return func(x, y Triple[A, B, C]) bool {
		if a(x.First, y.First) {
			return true
		}
		if a(y.First, x.First) {
			return false
		}
		if b(x.Second, y.Second) {
			return true
		}
		if b(y.Second, x.Second) {
			return false
		}
		return c(x.Third, y.Third)
	}
}

// NaturalPair is PairLess over two naturally ordered component types.
func NaturalPair[A, B cmp.Ordered]() btree.LessFunc[Pair[A, B]] {
	return PairLess[A, B](cmp.Less[A], cmp.Less[B])
}

// NaturalTriple is TripleLess over three naturally ordered component types.
func NaturalTriple[A, B, C cmp.Ordered]() btree.LessFunc[Triple[A, B, C]] {
	return TripleLess[A, B, C](cmp.Less[A], cmp.Less[B], cmp.Less[C])
}
