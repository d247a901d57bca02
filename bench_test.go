package scapegoat

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchN = 10000

func benchValues() []int {
	return rand.New(rand.NewSource(1)).Perm(benchN)
}

func BenchmarkInsertRandom(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, v := range values {
			tree.Insert(v)
		}
	}
}

func BenchmarkInsertAscending(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for v := 0; v < benchN; v++ {
			tree.Insert(v)
		}
	}
}

func BenchmarkLLRBInsertRandom(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := llrb.New()
		for _, v := range values {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkBTreeInsertRandom(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, v := range values {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	values := benchValues()
	tree := New[int]()
	tree.InsertBatch(values...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(values[i%benchN])
	}
}

func BenchmarkLLRBHas(b *testing.B) {
	values := benchValues()
	tree := llrb.New()
	for _, v := range values {
		tree.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(llrb.Int(values[i%benchN]))
	}
}

func BenchmarkInsertDelete(b *testing.B) {
	values := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, v := range values {
			tree.Insert(v)
		}
		for _, v := range values {
			tree.Delete(v)
		}
	}
}
