package scapegoat

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Check validates structural tree invariants:
//
//   - BST ordering, strict (no duplicates),
//   - parent back-references match child links, and the root has no parent,
//   - the live count equals the number of reachable nodes,
//   - the peak count is not below the live count,
//   - the height is within ⌊log_{1/α}(n)⌋.
//
// Check is meant for tests and costs O(n).
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrInvalidStructure, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvalidStructure)
	}
	items, height, err := checkNode(t.root, nil, nil)
	if err != nil {
		tracer().Errorf("scapegoat check: %v", err)
		return err
	}
	if items != t.count {
		return fmt.Errorf("%w: count mismatch (%d reachable, %d counted)", ErrInvalidStructure, items, t.count)
	}
	if t.peak < t.count {
		return fmt.Errorf("%w: peak %d below count %d", ErrInvalidStructure, t.peak, t.count)
	}
	if bound := t.cfg.threshold(t.count); height > bound {
		return fmt.Errorf("%w: height %d exceeds bound %d for %d nodes", ErrInvalidStructure, height, bound, t.count)
	}
	return nil
}

// checkNode checks the subtree at n, whose values have to lie strictly between
// lo and hi (nil meaning unbounded).
func checkNode[T constraints.Ordered](n *Node[T], lo, hi *T) (items int, height int, err error) {
	if lo != nil && !(*lo < n.value) || hi != nil && !(n.value < *hi) {
		return 0, 0, fmt.Errorf("%w: value %v out of order", ErrInvalidStructure, n.value)
	}
	height = 0
	items = 1
	for _, child := range []*Node[T]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link at %v", ErrInvalidStructure, child.value)
		}
		var cItems, cHeight int
		if child == n.left {
			cItems, cHeight, err = checkNode(child, lo, &n.value)
		} else {
			cItems, cHeight, err = checkNode(child, &n.value, hi)
		}
		if err != nil {
			return 0, 0, err
		}
		items += cItems
		height = max(height, cHeight+1)
	}
	return items, height, nil
}

// AlphaViolations returns the values of nodes whose heavier child holds more
// than α of the node's weight. Scapegoat trees tolerate such nodes as long as
// the height bound holds; the list is a diagnostic.
func (t *Tree[T]) AlphaViolations() []T {
	var violations []T
	var weigh func(*Node[T]) int
	weigh = func(n *Node[T]) int {
		if n == nil {
			return 0
		}
		l, r := weigh(n.left), weigh(n.right)
		size := l + r + 1
		if t.overweight(max(l, r), size) {
			violations = append(violations, n.value)
		}
		return size
	}
	weigh(t.Root())
	return violations
}
