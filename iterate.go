package scapegoat

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks the values of a tree in ascending order.
//
// An iterator is finite and cannot be restarted; request a new one to traverse
// again. The tree must not be modified while an iterator is in use: there is
// no snapshot, and a rebuild replaces the nodes an iterator points to.
type Iterator[T constraints.Ordered] struct {
	next *Node[T]
}

// Iterator returns a new iterator positioned before the minimum.
func (t *Tree[T]) Iterator() *Iterator[T] {
	if t.IsEmpty() {
		return &Iterator[T]{}
	}
	return &Iterator[T]{next: minNode(t.root)}
}

// Next returns the next value. valid is false once the iterator is exhausted,
// and stays false.
func (it *Iterator[T]) Next() (v T, valid bool) {
	if it == nil || it.next == nil {
		return v, false
	}
	v = it.next.value
	it.next = successorNode(it.next)
	return v, true
}

// HasNext reports whether Next will return another value.
func (it *Iterator[T]) HasNext() bool {
	return it != nil && it.next != nil
}

// All returns an iterator over the values of t in ascending order, for use
// with range-over-func.
//
//	for v := range tree.All() { … }
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of t in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		for n := maxNode(t.root); n != nil; n = predecessorNode(n) {
			if !yield(n.value) {
				return
			}
		}
	}
}
