package scapegoat

import "golang.org/x/exp/constraints"

// Node is a node of a scapegoat tree.
//
// Clients get read-only access to nodes for inspection, e.g. to draw a tree.
// Node pointers are invalidated by the next mutation of the tree: a rebuild
// replaces every node of the rebuilt subtree.
type Node[T constraints.Ordered] struct {
	value       T
	left, right *Node[T]
	parent      *Node[T] // back-reference only, never followed for cleanup
}

func newNode[T constraints.Ordered](v T, parent *Node[T]) *Node[T] {
	return &Node[T]{value: v, parent: parent}
}

// Value returns the value stored at node n.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent of n, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// IsLeaf is true for nodes without children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// sever cuts all links of a node which has been dropped from the tree.
func (n *Node[T]) sever() {
	n.left, n.right, n.parent = nil, nil, nil
}

// minNode returns the leftmost node of the subtree at n.
func minNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost node of the subtree at n.
func maxNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successorNode returns the in-order successor of n, or nil if n holds the
// maximum. It uses parent links and needs no comparisons.
func successorNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n.right != nil {
		return minNode(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// predecessorNode is the mirror image of successorNode.
func predecessorNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n.left != nil {
		return maxNode(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}
