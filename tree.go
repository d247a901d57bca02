package scapegoat

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/scapegoat/cmdlog"
	"github.com/npillmayer/scapegoat/sequence"
	"golang.org/x/exp/constraints"
)

// Tree is a scapegoat tree of distinct values of type T.
//
// Create trees with New or NewWithConfig. Inserting a value which is already
// present is a no-op.
//
//	Operation     |   amortized     |  worst case
//	--------------+-----------------+------------
//	Contains      |   O(log n)      |   O(log n)
//	Insert        |   O(log n)      |   O(n)
//	Delete        |   O(log n)      |   O(n)
//	KthSmallest   |   O(k + log n)  |   O(n)
//	Iterate       |   O(n)          |   O(n)
//
// All mutations are recorded for Undo and Redo.
type Tree[T constraints.Ordered] struct {
	cfg       Config
	root      *Node[T]
	count     int                   // live nodes
	peak      int                   // historical peak of count, reset by whole-tree rebuilds
	scratch   *sequence.Sequence[T] // flattening buffer for rebuilds
	history   *cmdlog.Log[T]
	replaying bool // set while the history is replaying a command
}

// New creates an empty tree with α = 2/3.
func New[T constraints.Ordered]() *Tree[T] {
	t, err := NewWithConfig[T](Config{})
	assert(err == nil, "default configuration must be valid")
	return t
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig[T constraints.Ordered](cfg Config) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{
		cfg:     cfg.normalized(),
		scratch: sequence.New[T](16),
		history: cmdlog.New[T](),
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config {
	return t.cfg
}

// Alpha returns the weight-balance factor of t.
func (t *Tree[T]) Alpha() float64 {
	return t.cfg.Alpha
}

// SetAlpha changes the weight-balance factor. If the current shape exceeds the
// height bound for the new factor, the whole tree is rebuilt.
func (t *Tree[T]) SetAlpha(alpha float64) error {
	cfg := t.cfg
	cfg.Alpha = alpha
	if err := cfg.validate(); err != nil {
		return err
	}
	t.cfg = cfg.normalized()
	if t.count > 0 && t.Height() > t.cfg.threshold(t.count) {
		tracer().Debugf("alpha %g: height %d exceeds bound, rebuilding", alpha, t.Height())
		t.rebuildAll()
	}
	t.peak = t.count // thresholds of peak and count have to agree under the new factor
	return nil
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns the root node for read-only inspection, or nil.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Contains reports whether v is in the tree.
func (t *Tree[T]) Contains(v T) bool {
	return t.find(v) != nil
}

// Find returns the node holding v, or ErrNotFound.
func (t *Tree[T]) Find(v T) (*Node[T], error) {
	if n := t.find(v); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, v)
}

func (t *Tree[T]) find(v T) *Node[T] {
	if t == nil {
		return nil
	}
	n := t.root
	for n != nil {
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert adds v to the tree. It returns false, and records nothing, if v is
// already present.
func (t *Tree[T]) Insert(v T) bool {
	if !t.insert(v) {
		return false
	}
	t.record(cmdlog.Command[T]{Kind: cmdlog.Insert, Value: v})
	return true
}

// Delete removes v from the tree. It returns ErrNotFound, and records nothing,
// if v is not present.
func (t *Tree[T]) Delete(v T) error {
	if !t.delete(v) {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	t.record(cmdlog.Command[T]{Kind: cmdlog.Delete, Value: v})
	return nil
}

// InsertBatch inserts values as a single undoable step. It returns the number
// of values which have not been in the tree before.
func (t *Tree[T]) InsertBatch(values ...T) int {
	cmds := make([]cmdlog.Command[T], 0, len(values))
	for _, v := range values {
		if t.insert(v) {
			cmds = append(cmds, cmdlog.Command[T]{Kind: cmdlog.Insert, Value: v})
		}
	}
	t.recordBatch(cmds)
	return len(cmds)
}

// DeleteBatch deletes values as a single undoable step. Values not in the tree
// are skipped. It returns the number of values removed.
func (t *Tree[T]) DeleteBatch(values ...T) int {
	cmds := make([]cmdlog.Command[T], 0, len(values))
	for _, v := range values {
		if t.delete(v) {
			cmds = append(cmds, cmdlog.Command[T]{Kind: cmdlog.Delete, Value: v})
		}
	}
	t.recordBatch(cmds)
	return len(cmds)
}

// Clear removes all values. Clearing is recorded as a batch of deletions and
// may be undone.
func (t *Tree[T]) Clear() {
	if t.root == nil {
		return
	}
	values := t.InOrder()
	cmds := make([]cmdlog.Command[T], len(values))
	for i, v := range values {
		cmds[i] = cmdlog.Command[T]{Kind: cmdlog.Delete, Value: v}
	}
	t.drop()
	t.recordBatch(cmds)
}

// drop discards all nodes without touching the history.
func (t *Tree[T]) drop() {
	discard(t.root)
	t.root = nil
	t.count, t.peak = 0, 0
	t.scratch.Reset()
}

// --- Insertion and deletion ------------------------------------------------

// insert places v as a new leaf and repairs balance if the leaf ended up too
// deep. It does not record anything.
func (t *Tree[T]) insert(v T) bool {
	if t.root == nil {
		t.root = newNode(v, nil)
		t.grow()
		return true
	}
	n, depth := t.root, 0
	var parent *Node[T]
	for n != nil {
		parent = n
		depth++
		switch {
		case v < n.value:
			n = n.left
		case v > n.value:
			n = n.right
		default:
			return false
		}
	}
	leaf := newNode(v, parent)
	if v < parent.value {
		parent.left = leaf
	} else {
		parent.right = leaf
	}
	t.grow()
	if threshold := t.cfg.threshold(t.peak); depth+1 > threshold {
		if goat := t.findScapegoat(leaf); goat != nil {
			t.rebuildAt(goat)
		}
	}
	return true
}

func (t *Tree[T]) grow() {
	t.count++
	if t.count > t.peak {
		t.peak = t.count
	}
}

// delete removes the node holding v. It does not record anything.
func (t *Tree[T]) delete(v T) bool {
	n := t.find(v)
	if n == nil {
		return false
	}
	if n.left != nil && n.right != nil {
		// the successor has no left child, so unlinking it is a simple case
		succ := minNode(n.right)
		n.value = succ.value
		n = succ
	}
	t.unlink(n)
	t.count--
	switch {
	case t.count == 0:
		t.peak = 0
	case t.cfg.threshold(t.count) < t.cfg.threshold(t.peak):
		tracer().Debugf("delete underflow: %d of peak %d, rebuilding tree", t.count, t.peak)
		t.rebuildAll()
	}
	return true
}

// unlink removes a node with at most one child, splicing the child into its slot.
func (t *Tree[T]) unlink(n *Node[T]) {
	assert(n.left == nil || n.right == nil, "unlink called for node with two children")
	child := n.left
	if child == nil {
		child = n.right
	}
	if child != nil {
		child.parent = n.parent
	}
	t.replaceChild(n.parent, n, child)
	n.sever()
}

// replaceChild makes repl take old's place below parent (or at the root).
func (t *Tree[T]) replaceChild(parent, old, repl *Node[T]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		parent.right = repl
	}
}

// --- History ---------------------------------------------------------------

func (t *Tree[T]) record(cmd cmdlog.Command[T]) {
	if t.replaying {
		return
	}
	t.history.Record(cmd)
}

func (t *Tree[T]) recordBatch(cmds []cmdlog.Command[T]) {
	if t.replaying {
		return
	}
	t.history.RecordBatch(cmds)
}
