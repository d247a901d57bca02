package scapegoat

import (
	"math"
	"math/bits"

	"github.com/npillmayer/scapegoat/sequence"
	"golang.org/x/exp/constraints"
)

// findScapegoat walks upward from the parent of a freshly inserted leaf and
// returns the ancestor whose subtree has to be rebuilt, or nil.
//
// Subtree sizes are recounted at every step; nodes do not cache them.
// An ancestor g at distance i above the leaf qualifies if
//
//   - its heavier child holds more than α of its weight and a balanced rebuild
//     of g is strictly shorter than i, or
//   - i > log_{1/α}(size(g)), i.e. g is too tall for its weight.
//
// Either way rebuilding g lifts the leaf by at least one level. If the leaf
// is deeper than ⌊log_{1/α}(n)⌋ the root itself satisfies the second
// condition, so a scapegoat is found whenever the height bound is exceeded.
// A nil result is normal otherwise.
func (t *Tree[T]) findScapegoat(leaf *Node[T]) *Node[T] {
	base := math.Log(1 / t.cfg.Alpha)
	size := 1
	for g, i := leaf.parent, 1; g != nil; g, i = g.parent, i+1 {
		l, r := countNodes(g.left), countNodes(g.right)
		size = l + r + 1
		if t.overweight(max(l, r), size) && balancedHeight(size) < i {
			tracer().Debugf("scapegoat %v: child weight %d of %d, %d above leaf",
				g.value, max(l, r), size, i)
			return g
		}
		if float64(i) > math.Log(float64(size))/base {
			tracer().Debugf("scapegoat %v: %d levels above leaf, weight %d", g.value, i, size)
			return g
		}
	}
	tracer().Debugf("no scapegoat above %v (tree size %d)", leaf.value, size)
	return nil
}

// overweight is the α-weight-balance violation test.
func (t *Tree[T]) overweight(childSize, size int) bool {
	return float64(childSize) > t.cfg.Alpha*float64(size)
}

// balancedHeight is the height of a minimum-height tree with n > 0 nodes.
func balancedHeight(n int) int {
	return bits.Len(uint(n)) - 1
}

// rebuildAt replaces the subtree at g by a perfectly balanced one holding the
// same values.
func (t *Tree[T]) rebuildAt(g *Node[T]) {
	parent := g.parent
	flatten(g, t.scratch)
	sub := build(t.scratch.Values(), parent)
	tracer().Debugf("rebuilt subtree of %d nodes", t.scratch.Len())
	t.scratch.Reset()
	t.replaceChild(parent, g, sub)
}

// rebuildAll rebuilds the whole tree and resets the peak count.
func (t *Tree[T]) rebuildAll() {
	if t.root == nil {
		return
	}
	flatten(t.root, t.scratch)
	t.root = build(t.scratch.Values(), nil)
	tracer().Debugf("rebuilt tree of %d nodes", t.scratch.Len())
	t.scratch.Reset()
	t.peak = t.count
}

// flatten appends the values of the subtree at n to seq in ascending order
// and severs every node of the subtree. Afterwards the subtree is garbage.
// The walk uses an explicit stack; the subtree itself is left unchanged until
// each node has been visited.
func flatten[T constraints.Ordered](n *Node[T], seq *sequence.Sequence[T]) {
	st := make([]*Node[T], 0, 32)
	for ; n != nil; n = n.left {
		st = append(st, n)
	}
	for len(st) > 0 {
		n, st = st[len(st)-1], st[:len(st)-1]
		seq.Append(n.value)
		right := n.right
		n.sever()
		for ; right != nil; right = right.left {
			st = append(st, right)
		}
	}
}

// build creates a minimum-height tree from sorted values, hanging it below parent.
func build[T constraints.Ordered](values []T, parent *Node[T]) *Node[T] {
	if len(values) == 0 {
		return nil
	}
	mid := (len(values) - 1) / 2
	n := newNode(values[mid], parent)
	n.left = build(values[:mid], n)
	n.right = build(values[mid+1:], n)
	return n
}

// countNodes returns the size of the subtree at n by full recount.
func countNodes[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// heightOf returns the height of the subtree at n in edges; -1 for nil.
func heightOf[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(heightOf(n.left), heightOf(n.right))
}

// discard severs all nodes of the subtree at n.
func discard[T constraints.Ordered](n *Node[T]) {
	st := []*Node[T]{}
	for n != nil || len(st) > 0 {
		if n == nil {
			n, st = st[len(st)-1], st[:len(st)-1]
		}
		l, r := n.left, n.right
		n.sever()
		if r != nil {
			st = append(st, r)
		}
		n = l
	}
}
