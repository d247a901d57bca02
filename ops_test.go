package scapegoat

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	a, b := New[int](), New[int]()
	if !Equal(a, b) {
		t.Errorf("empty trees are equal")
	}
	a.InsertBatch(1, 2, 3, 4, 5)
	b.InsertBatch(5, 4, 3, 2, 1) // different shape
	if !Equal(a, b) || !a.Equal(b) {
		t.Errorf("trees with the same values are equal regardless of shape")
	}
	b.Delete(3)
	b.Insert(6)
	if Equal(a, b) {
		t.Errorf("trees with different values must not be equal")
	}
	b.Delete(6)
	if Equal(a, b) {
		t.Errorf("trees of different size must not be equal")
	}
}

func TestMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	a, b := New[int](), New[int]()
	a.InsertBatch(1, 3, 5, 7)
	b.InsertBatch(2, 3, 4, 8)
	m := Merge(a, b)
	if want := []int{1, 2, 3, 4, 5, 7, 8}; !slices.Equal(m.InOrder(), want) {
		t.Errorf("merge: expected %v, have %v", want, m.InOrder())
	}
	if m.CanUndo() {
		t.Errorf("merged tree starts without history")
	}
	if a.Len() != 4 || b.Len() != 4 {
		t.Errorf("operands must not change")
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
	if e := Merge(New[int](), New[int]()); !e.IsEmpty() {
		t.Errorf("merge of empty trees is empty")
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}
	c := tree.Clone()
	if !Equal(tree, c) {
		t.Fatalf("clone differs")
	}
	c.Delete(50)
	if !tree.Contains(50) {
		t.Errorf("clone must not share nodes with its source")
	}
	if len(c.History()) != 1 {
		t.Errorf("clone history should hold only its own delete, have %v", c.History())
	}
	if err := c.Check(); err != nil {
		t.Error(err)
	}
}

func TestMoveFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	src := New[int]()
	src.InsertBatch(4, 2, 6)
	dst := New[int]()
	dst.Insert(99)
	dst.MoveFrom(src)
	if !src.IsEmpty() || src.CanUndo() {
		t.Errorf("source must be left empty, without history")
	}
	if want := []int{2, 4, 6}; !slices.Equal(dst.InOrder(), want) {
		t.Errorf("expected %v, have %v", want, dst.InOrder())
	}
	if err := dst.Check(); err != nil {
		t.Error(err)
	}
	if ok, _ := dst.Undo(); !ok || !dst.IsEmpty() {
		t.Errorf("moved history should undo the moved batch, have %v", dst.InOrder())
	}
	dst.MoveFrom(dst)
	src.Insert(1)
	if src.Len() != 1 {
		t.Errorf("moved-from tree must stay usable")
	}
}

func TestSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := sampleTree()
	lower, upper := tree.Split(10)
	if want := []int{3, 5, 7, 10}; !slices.Equal(lower.InOrder(), want) {
		t.Errorf("lower: expected %v, have %v", want, lower.InOrder())
	}
	if want := []int{12, 15, 18}; !slices.Equal(upper.InOrder(), want) {
		t.Errorf("upper: expected %v, have %v", want, upper.InOrder())
	}
	if tree.Len() != 7 {
		t.Errorf("split must not change the source")
	}
	lower, upper = tree.Split(1)
	if !lower.IsEmpty() || upper.Len() != 7 {
		t.Errorf("split below minimum: %v | %v", lower.InOrder(), upper.InOrder())
	}
	for _, part := range []*Tree[int]{lower, upper} {
		if err := part.Check(); err != nil {
			t.Error(err)
		}
	}
}
