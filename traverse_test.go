package scapegoat

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTraversals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := sampleTree()
	cases := []struct {
		tr   Traversal
		want string
	}{
		{InOrder, "3 5 7 10 12 15 18"},
		{PreOrder, "10 5 3 7 15 12 18"},
		{PostOrder, "3 7 5 12 18 15 10"},
		{LevelOrder, "10 | 5 15 | 3 7 12 18"},
	}
	for _, c := range cases {
		if s := tree.Display(c.tr); s != c.want {
			t.Errorf("%s: expected %q, have %q", c.tr, c.want, s)
		}
	}
	if w := tree.Walk(LevelOrder); !slices.Equal(w, []int{10, 5, 15, 3, 7, 12, 18}) {
		t.Errorf("flattened level order wrong: %v", w)
	}
	if levels := tree.Levels(); len(levels) != 3 {
		t.Errorf("expected 3 levels, have %d", len(levels))
	}
	empty := New[int]()
	for _, tr := range []Traversal{InOrder, PreOrder, PostOrder, LevelOrder} {
		if s := empty.Display(tr); s != "" {
			t.Errorf("%s of empty tree should be empty, have %q", tr, s)
		}
		if w := empty.Walk(tr); w == nil || len(w) != 0 {
			t.Errorf("%s walk of empty tree should be an empty slice", tr)
		}
	}
}

func TestIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := sampleTree()
	it := tree.Iterator()
	var got []int
	for it.HasNext() {
		v, ok := it.Next()
		if !ok {
			t.Fatalf("HasNext and Next disagree")
		}
		got = append(got, v)
	}
	if !slices.Equal(got, tree.InOrder()) {
		t.Errorf("iterator yields %v", got)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("exhausted iterator must stay exhausted")
	}
	if _, ok := New[int]().Iterator().Next(); ok {
		t.Errorf("iterator over empty tree yields nothing")
	}
	var back []int
	for v := range tree.Backward() {
		back = append(back, v)
	}
	slices.Reverse(back)
	if !slices.Equal(back, got) {
		t.Errorf("backward iteration yields %v", back)
	}
	var firstTwo []int
	for v := range tree.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	if !slices.Equal(firstTwo, []int{3, 5}) {
		t.Errorf("early break yields %v", firstTwo)
	}
}

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	tree.InsertBatch(10, 5, 15, 3)
	var buf bytes.Buffer
	if err := ToDot(tree, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("not a DOT graph:\n%s", dot)
	}
	for _, label := range []string{`label="10"`, `label="3"`, "shape=point"} {
		if !strings.Contains(dot, label) {
			t.Errorf("DOT output misses %s", label)
		}
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges (one to an empty node), have %d", n)
	}
}

type failingWriter struct{ n int }

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.n == 0 {
		return 0, errors.New("disk full")
	}
	fw.n--
	return len(p), nil
}

func TestToDotReportsWriteError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scapegoat")
	defer teardown()
	//
	tree := New[int]()
	tree.InsertBatch(10, 5, 15)
	for _, n := range []int{0, 2} {
		if err := ToDot(tree, &failingWriter{n: n}); err == nil || err.Error() != "disk full" {
			t.Errorf("write error after %d writes should be returned, got %v", n, err)
		}
	}
}
