package scapegoat

import (
	"testing"

	"github.com/npillmayer/scapegoat/cmdlog"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestUndoRedoInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	tree.Insert(10)
	if ok, err := tree.Undo(); !ok || err != nil {
		t.Fatalf("undo failed: %v, %v", ok, err)
	}
	if tree.Contains(10) || !tree.IsEmpty() {
		t.Errorf("undo should have removed 10")
	}
	if ok, err := tree.Redo(); !ok || err != nil {
		t.Fatalf("redo failed: %v, %v", ok, err)
	}
	if !tree.Contains(10) {
		t.Errorf("redo should have restored 10")
	}
	if ok, _ := tree.Redo(); ok {
		t.Errorf("nothing left to redo")
	}
	if tree.Len() != 1 {
		t.Errorf("redo on empty redo stack must be a no-op")
	}
}

func TestUndoRedoDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := sampleTree()
	if err := tree.Delete(10); err != nil {
		t.Fatal(err)
	}
	tree.Undo()
	if !tree.Contains(10) || tree.Len() != 7 {
		t.Errorf("undo of delete should restore 10")
	}
	tree.Redo()
	if tree.Contains(10) || tree.Len() != 6 {
		t.Errorf("redo of delete should remove 10 again")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	if ok, err := tree.Undo(); ok || err != nil {
		t.Errorf("undo without history should be a silent no-op, have %v, %v", ok, err)
	}
	if ok, err := tree.Redo(); ok || err != nil {
		t.Errorf("redo without history should be a silent no-op, have %v, %v", ok, err)
	}
	if tree.CanUndo() || tree.CanRedo() {
		t.Errorf("fresh tree has no history")
	}
}

func TestNewMutationClearsRedo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.Undo()
	if !tree.CanRedo() {
		t.Fatalf("expected a redo step")
	}
	tree.Insert(3)
	if tree.CanRedo() {
		t.Errorf("a new mutation must clear the redo stack")
	}
	if tree.Contains(2) {
		t.Errorf("2 has been undone")
	}
}

func TestUndoSequenceRestoresStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	snapshots := []*Tree[int]{tree.Clone()}
	for i := 0; i < 60; i++ {
		v := (i * 37) % 50
		if tree.Contains(v) {
			tree.Delete(v)
		} else {
			tree.Insert(v)
		}
		snapshots = append(snapshots, tree.Clone())
	}
	for i := len(snapshots) - 2; i >= 0; i-- {
		if ok, err := tree.Undo(); !ok || err != nil {
			t.Fatalf("undo %d: %v, %v", i, ok, err)
		}
		if !tree.Equal(snapshots[i]) {
			t.Fatalf("after undo to state %d: have %v, want %v", i, tree.InOrder(), snapshots[i].InOrder())
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	for i := 1; i < len(snapshots); i++ {
		if ok, err := tree.Redo(); !ok || err != nil {
			t.Fatalf("redo %d: %v, %v", i, ok, err)
		}
		if !tree.Equal(snapshots[i]) {
			t.Fatalf("after redo to state %d: have %v, want %v", i, tree.InOrder(), snapshots[i].InOrder())
		}
	}
}

func TestBatchIsOneStep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	tree.Insert(100)
	if n := tree.InsertBatch(1, 2, 3, 2, 100); n != 3 {
		t.Errorf("expected 3 effective inserts, have %d", n)
	}
	h := tree.History()
	if len(h) != 6 || h[0].Kind != cmdlog.BatchEnd || h[4].Kind != cmdlog.BatchStart {
		t.Errorf("unexpected history %v", h)
	}
	tree.Undo()
	if tree.Len() != 1 || !tree.Contains(100) {
		t.Errorf("undo of batch should leave only 100, have %v", tree.InOrder())
	}
	tree.Redo()
	if tree.Len() != 4 {
		t.Errorf("redo of batch should restore 4 values, have %v", tree.InOrder())
	}
	if n := tree.DeleteBatch(1, 3, 42); n != 2 {
		t.Errorf("expected 2 effective deletes, have %d", n)
	}
	tree.Undo()
	if tree.Len() != 4 {
		t.Errorf("undo of delete batch should restore 4 values, have %v", tree.InOrder())
	}
	if n := tree.InsertBatch(1, 2); n != 0 {
		t.Errorf("batch of present values should insert nothing, have %d", n)
	}
	if !tree.CanRedo() {
		t.Errorf("an ineffective batch must not clear the redo stack")
	}
}

func TestForgetHistory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := sampleTree()
	tree.ForgetHistory()
	if tree.CanUndo() {
		t.Errorf("history should be gone")
	}
	if tree.Len() != 7 {
		t.Errorf("forgetting history must not change the values")
	}
}
