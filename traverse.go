package scapegoat

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Traversal selects the order of a tree walk.
type Traversal int8

// Traversal orders.
const (
	InOrder Traversal = iota
	PreOrder
	PostOrder
	LevelOrder
)

func (tr Traversal) String() string {
	switch tr {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return fmt.Sprintf("traversal(%d)", int8(tr))
}

// InOrder returns all values in ascending order.
func (t *Tree[T]) InOrder() []T {
	values := make([]T, 0, t.Len())
	if t.IsEmpty() {
		return values
	}
	t.walkInOrder(t.root, func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// PreOrder returns all values, each node before its subtrees.
func (t *Tree[T]) PreOrder() []T {
	nodes := t.preOrderNodes()
	values := make([]T, len(nodes))
	for i, n := range nodes {
		values[i] = n.value
	}
	return values
}

// PostOrder returns all values, each node after its subtrees.
func (t *Tree[T]) PostOrder() []T {
	values := make([]T, 0, t.Len())
	if t.IsEmpty() {
		return values
	}
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		values = append(values, n.value)
	}
	walk(t.root)
	return values
}

// Levels returns the values grouped by depth, root level first, each level
// from left to right.
func (t *Tree[T]) Levels() [][]T {
	levels := [][]T{}
	if t.IsEmpty() {
		return levels
	}
	type entry struct {
		node  *Node[T]
		depth int
	}
	q := linkedlistqueue.New()
	q.Enqueue(entry{t.root, 0})
	for !q.Empty() {
		x, _ := q.Dequeue()
		e := x.(entry)
		if e.depth == len(levels) {
			levels = append(levels, []T{})
		}
		levels[e.depth] = append(levels[e.depth], e.node.value)
		if e.node.left != nil {
			q.Enqueue(entry{e.node.left, e.depth + 1})
		}
		if e.node.right != nil {
			q.Enqueue(entry{e.node.right, e.depth + 1})
		}
	}
	return levels
}

// Walk returns all values in the order selected by tr. Level order is
// flattened.
func (t *Tree[T]) Walk(tr Traversal) []T {
	switch tr {
	case PreOrder:
		return t.PreOrder()
	case PostOrder:
		return t.PostOrder()
	case LevelOrder:
		values := make([]T, 0, t.Len())
		for _, level := range t.Levels() {
			values = append(values, level...)
		}
		return values
	}
	return t.InOrder()
}

// Display renders the values in traversal order tr as a space separated
// string. Levels are separated by " | " in level order.
func (t *Tree[T]) Display(tr Traversal) string {
	var b strings.Builder
	if tr == LevelOrder {
		for i, level := range t.Levels() {
			if i > 0 {
				b.WriteString(" | ")
			}
			writeValues(&b, level)
		}
		return b.String()
	}
	writeValues(&b, t.Walk(tr))
	return b.String()
}

func writeValues[T any](b *strings.Builder, values []T) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(b, v)
	}
}
