package scapegoat

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"golang.org/x/exp/constraints"
)

// Equal reports whether two trees hold the same values. Shapes are not
// compared: trees with different rebuild histories may well be equal.
func Equal[T constraints.Ordered](a, b *Tree[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for {
		va, oka := ia.Next()
		vb, okb := ib.Next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if va != vb {
			return false
		}
	}
}

// Equal reports whether t holds the same values as other.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	return Equal(t, other)
}

// Merge builds a new tree holding the union of the values of a and b.
// The values of a are inserted first, then those of b; duplicates collapse.
// The result uses a's configuration and has an empty history.
func Merge[T constraints.Ordered](a, b *Tree[T]) *Tree[T] {
	cfg := Config{}
	if a != nil {
		cfg = a.cfg
	}
	m, err := NewWithConfig[T](cfg)
	assert(err == nil, "Merge: configuration of left operand is invalid")
	for _, src := range []*Tree[T]{a, b} {
		if src.IsEmpty() {
			continue
		}
		for v := range src.All() {
			m.insert(v)
		}
	}
	return m
}

// Clone returns a deep copy of t with its own nodes. The copy is rebuilt
// perfectly balanced and does not share t's shape or history.
func (t *Tree[T]) Clone() *Tree[T] {
	return fromSorted(t.cfg, t.InOrder())
}

// fromSorted creates a perfectly balanced tree from ascending, distinct values.
func fromSorted[T constraints.Ordered](cfg Config, values []T) *Tree[T] {
	t, err := NewWithConfig[T](cfg)
	assert(err == nil, "fromSorted: configuration is invalid")
	t.root = build(values, nil)
	t.count, t.peak = len(values), len(values)
	return t
}

// MoveFrom transfers the nodes, counts, configuration and history of src to t
// and leaves src empty. The former content of t is discarded.
func (t *Tree[T]) MoveFrom(src *Tree[T]) {
	if t == src || src == nil {
		return
	}
	t.drop()
	t.cfg = src.cfg
	t.root, t.count, t.peak = src.root, src.count, src.peak
	t.history, src.history = src.history, t.history
	src.root, src.count, src.peak = nil, 0, 0
	src.history.Clear()
}

// Split returns two new trees: lower holds the values ≤ pivot, upper the
// values > pivot. Both are rebuilt perfectly balanced; t is unchanged.
func (t *Tree[T]) Split(pivot T) (lower, upper *Tree[T]) {
	values := t.InOrder()
	i := 0
	for i < len(values) && values[i] <= pivot {
		i++
	}
	lower, upper = fromSorted(t.cfg, values[:i]), fromSorted(t.cfg, values[i:])
	tracer().Debugf("split at %v: %d | %d", pivot, lower.count, upper.count)
	return lower, upper
}
