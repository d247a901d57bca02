package scapegoat

import (
	"fmt"
)

// Min returns the smallest value, or ErrEmptyTree.
func (t *Tree[T]) Min() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return minNode(t.root).value, nil
}

// Max returns the largest value, or ErrEmptyTree.
func (t *Tree[T]) Max() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxNode(t.root).value, nil
}

// Successor returns the smallest value greater than v. v has to be in the tree,
// otherwise ErrNotFound is returned. For the maximum value the error is
// ErrNoSuccessor.
func (t *Tree[T]) Successor(v T) (T, error) {
	var zero T
	n, err := t.Find(v)
	if err != nil {
		return zero, err
	}
	if s := successorNode(n); s != nil {
		return s.value, nil
	}
	return zero, fmt.Errorf("%w: %v is the maximum", ErrNoSuccessor, v)
}

// Predecessor returns the greatest value less than v. v has to be in the tree,
// otherwise ErrNotFound is returned. For the minimum value the error is
// ErrNoPredecessor.
func (t *Tree[T]) Predecessor(v T) (T, error) {
	var zero T
	n, err := t.Find(v)
	if err != nil {
		return zero, err
	}
	if p := predecessorNode(n); p != nil {
		return p.value, nil
	}
	return zero, fmt.Errorf("%w: %v is the minimum", ErrNoPredecessor, v)
}

// KthSmallest returns the k-th smallest value, counting from 1.
// Nodes do not know their subtree sizes, so this is an in-order walk which
// stops at the k-th value.
func (t *Tree[T]) KthSmallest(k int) (T, error) {
	var zero T
	if t.IsEmpty() {
		return zero, ErrEmptyTree
	}
	if k < 1 || k > t.count {
		return zero, fmt.Errorf("%w: %d not in [1,%d]", ErrOutOfRange, k, t.count)
	}
	var result T
	i := 0
	t.walkInOrder(t.root, func(v T) bool {
		i++
		if i == k {
			result = v
			return false
		}
		return true
	})
	return result, nil
}

// Rank returns the 1-based position of v in ascending order, or ErrNotFound.
func (t *Tree[T]) Rank(v T) (int, error) {
	if !t.Contains(v) {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	r := 0
	t.walkInOrder(t.root, func(x T) bool {
		r++
		return x != v
	})
	return r, nil
}

// SumInRange returns the sum of all values v with lo ≤ v ≤ hi. For string
// trees the "sum" is the concatenation in ascending order.
// If lo > hi the range is empty and the zero value is returned.
func (t *Tree[T]) SumInRange(lo, hi T) T {
	var sum T
	if t.IsEmpty() || lo > hi {
		return sum
	}
	t.walkRange(t.root, lo, hi, func(v T) {
		sum += v
	})
	return sum
}

// ValuesInRange returns all values v with lo ≤ v ≤ hi in ascending order.
// If lo > hi the range is empty and an empty (non-nil) slice is returned.
func (t *Tree[T]) ValuesInRange(lo, hi T) []T {
	values := []T{}
	if t.IsEmpty() || lo > hi {
		return values
	}
	t.walkRange(t.root, lo, hi, func(v T) {
		values = append(values, v)
	})
	return values
}

// CountInRange returns the number of values v with lo ≤ v ≤ hi.
func (t *Tree[T]) CountInRange(lo, hi T) int {
	cnt := 0
	if t.IsEmpty() || lo > hi {
		return 0
	}
	t.walkRange(t.root, lo, hi, func(T) {
		cnt++
	})
	return cnt
}

// walkRange visits the values of the subtree at n which lie in [lo, hi], in
// ascending order. Subtrees entirely outside the range are pruned; the walk
// still passes through out-of-range nodes to reach in-range descendants.
func (t *Tree[T]) walkRange(n *Node[T], lo, hi T, visit func(T)) {
	if n == nil {
		return
	}
	if lo < n.value { // left subtree may hold values ≥ lo
		t.walkRange(n.left, lo, hi, visit)
	}
	if lo <= n.value && n.value <= hi {
		visit(n.value)
	}
	if n.value < hi { // right subtree may hold values ≤ hi
		t.walkRange(n.right, lo, hi, visit)
	}
}

// walkInOrder calls f for each value of the subtree at n in ascending order,
// until f returns false. It returns false if the walk has been stopped.
func (t *Tree[T]) walkInOrder(n *Node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}
	if !t.walkInOrder(n.left, f) {
		return false
	}
	if !f(n.value) {
		return false
	}
	return t.walkInOrder(n.right, f)
}
