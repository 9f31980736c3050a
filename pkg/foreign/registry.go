// Package foreign tracks ownership of opaque foreign objects held inside a
// tree. A binding layer that stores host-runtime references in a container
// needs every physical record occurrence to hold exactly one reference; the
// Registry plays the host side of that contract, counting Clone and Drop
// calls per object so tests and bindings can audit the balance.
package foreign

import (
	"fmt"
	"sync"

	"github.com/mythicalcodelabs/yggdrasil/pkg/btree"
)

// Registry counts live references per object. The zero value of T is treated
// as "no object" and never counted, mirroring hosts whose null reference is
// not reference-counted.
type Registry[T comparable] struct {
	mu   sync.Mutex
	refs map[T]int
}

// NewRegistry returns an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{refs: make(map[T]int)}
}

// Clone takes one reference on x and returns it.
func (r *Registry[T]) Clone(x T) T {
	var zero T
	if x == zero {
		return x
	}
	r.mu.Lock()
	r.refs[x]++
	r.mu.Unlock()
	return x
}

// Drop releases one reference on x. Dropping an object with no live
// references is a program error: it means something released twice.
func (r *Registry[T]) Drop(x T) {
	var zero T
	if x == zero {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.refs[x]
	if n == 0 {
		panic(fmt.Sprintf("foreign: drop of dead reference %v", x))
	}
	if n == 1 {
		delete(r.refs, x)
		return
	}
	r.refs[x] = n - 1
}

// Live reports the number of references currently held on x.
func (r *Registry[T]) Live(x T) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refs[x]
}

// TotalLive reports the number of references held across all objects.
func (r *Registry[T]) TotalLive() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.refs {
		total += n
	}
	return total
}

// Balanced reports whether every Clone has been matched by a Drop.
func (r *Registry[T]) Balanced() bool {
	return r.TotalLive() == 0
}

// Hooks adapts a registry into key hooks for a Set or Multiset: each record
// occurrence holds one reference on its key.
func Hooks[T comparable](r *Registry[T]) btree.Hooks[T] {
	return btree.Hooks[T]{
		Retain:  func(x T) { r.Clone(x) },
		Release: func(x T) { r.Drop(x) },
	}
}

// ItemHooks adapts a key registry and a value registry into record hooks for
// a Map or Multimap: each record occurrence holds one reference on its key
// and one on its value.
func ItemHooks[K, V comparable](kr *Registry[K], vr *Registry[V]) btree.Hooks[btree.Item[K, V]] {
	return btree.Hooks[btree.Item[K, V]]{
		Retain: func(it btree.Item[K, V]) {
			kr.Clone(it.Key)
			vr.Clone(it.Value)
		},
		Release: func(it btree.Item[K, V]) {
			kr.Drop(it.Key)
			vr.Drop(it.Value)
		},
	}
}
