// Package rbtree implements a persistent ordered map backed by a red-black tree.
//
// Every Tree value is an immutable version of the map. Add and Remove return a
// new version and leave the receiver untouched; only the O(log n) nodes on the
// edited path are rebuilt, the rest of the structure is shared between versions.
// Because nodes are never written after construction, any number of goroutines
// may read any number of versions without synchronization.
package rbtree

import "golang.org/x/exp/constraints"

// Compare reports the order of a and b: negative when a < b, zero when they
// are equal and positive when a > b. It must be a total order.
type Compare[K any] func(a, b K) int

// Callback is called by Each for every entry in key order. Returning false
// stops the walk.
type Callback[K, V any] func(key K, value V) bool

// Tree is one version of a persistent ordered map. The zero Tree is not
// usable; create trees with New, NewFunc or Singleton.
type Tree[K, V any] struct {
	root *node[K, V]
	cmp  Compare[K]
}

// New creates an empty tree ordered by the natural order of K.
func New[K constraints.Ordered, V any]() Tree[K, V] {
	return Tree[K, V]{cmp: compareOrdered[K]}
}

// NewFunc creates an empty tree ordered by cmp.
func NewFunc[K, V any](cmp Compare[K]) Tree[K, V] {
	if cmp == nil {
		panic("rbtree: nil compare function")
	}
	return Tree[K, V]{cmp: cmp}
}

// Singleton creates a tree holding a single entry.
func Singleton[K constraints.Ordered, V any](key K, value V) Tree[K, V] {
	return New[K, V]().Add(key, value)
}

// Empty returns an empty tree sharing t's ordering.
func (t Tree[K, V]) Empty() Tree[K, V] {
	return Tree[K, V]{cmp: t.cmp}
}

// compareOrdered orders keys by <. NaN sorts before every other float,
// matching cmp.Compare.
func compareOrdered[K constraints.Ordered](a, b K) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
