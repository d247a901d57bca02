package scapegoat

import (
	"fmt"
	"math"
	"strings"
)

// Report describes the balance state of a tree.
type Report struct {
	Count    int     // number of values
	Height   int     // in edges; 0 for a single node, -1 for an empty tree
	Bound    float64 // log_{1/α}(Count)
	Balanced bool    // Count == 0 or Height ≤ ⌊Bound⌋
}

// Height returns the height of the tree in edges: 0 for a single node and
// -1 for an empty tree. The height is measured, not cached, and costs O(n).
func (t *Tree[T]) Height() int {
	if t == nil {
		return -1
	}
	return heightOf(t.root)
}

// Balance measures the tree and returns a balance report.
func (t *Tree[T]) Balance() Report {
	r := Report{Count: t.Len(), Height: t.Height()}
	if r.Count == 0 {
		r.Balanced = true
		return r
	}
	r.Bound = t.cfg.heightBound(r.Count)
	r.Balanced = r.Height <= int(math.Floor(r.Bound))
	return r
}

// IsBalanced reports whether the height of t is within ⌊log_{1/α}(n)⌋.
// It is meant as an assertion oracle for tests and benchmarks.
func (t *Tree[T]) IsBalanced() bool {
	return t.Balance().Balanced
}

// Verdict texts of a Report.
const (
	VerdictEmpty      = "Tree empty. Of course it's balanced 😎"
	VerdictBalanced   = ":D Tree is balanced -- congratulations. It's not a Linked List."
	VerdictUnbalanced = "~_~ Tree is NOT balanced. A scapegoat must be sacrificed."
)

func (r Report) String() string {
	if r.Count == 0 {
		return VerdictEmpty
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Node count: %d\n", r.Count)
	fmt.Fprintf(&b, "Height: %d\n", r.Height)
	fmt.Fprintf(&b, "Height bound: %.4g\n\n", r.Bound)
	b.WriteString(r.Verdict())
	return b.String()
}

// Verdict is the one-line summary of a report.
func (r Report) Verdict() string {
	switch {
	case r.Count == 0:
		return VerdictEmpty
	case r.Balanced:
		return VerdictBalanced
	}
	return VerdictUnbalanced
}
