package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/btree"
	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/scapegoat/render"
	"github.com/petar/GoLLRB/llrb"
	"github.com/schollz/progressbar/v3"
)

// BenchOptions configures a benchmark run.
type BenchOptions struct {
	N        int
	Seed     int64
	Alpha    float64
	Progress bool
}

// Result holds the timings of one contender.
type Result struct {
	Name                   string
	Insert, Search, Delete time.Duration
	RangeSum               time.Duration // scapegoat only
}

type contender struct {
	name   string
	insert func(int)
	search func(int) bool
	delete func(int)
}

// Bench inserts, looks up and deletes opts.N shuffled values in a scapegoat
// tree, a B-tree and an LLRB tree. It fails if the scapegoat tree is not
// balanced after the insert phase or a lookup misses.
func Bench(opts BenchOptions) ([]Result, error) {
	if opts.N < 1 {
		return nil, fmt.Errorf("bench: need at least one value, have %d", opts.N)
	}
	sg, err := scapegoat.NewWithConfig[int](scapegoat.Config{Alpha: opts.Alpha})
	if err != nil {
		return nil, err
	}
	bt := btree.NewOrderedG[int](32)
	rb := llrb.New()
	contenders := []contender{
		{"scapegoat", func(v int) { sg.Insert(v) }, sg.Contains, func(v int) { sg.Delete(v) }},
		{"google/btree", func(v int) { bt.ReplaceOrInsert(v) }, bt.Has, func(v int) { bt.Delete(v) }},
		{"GoLLRB", func(v int) { rb.ReplaceOrInsert(llrb.Int(v)) },
			func(v int) bool { return rb.Has(llrb.Int(v)) },
			func(v int) { rb.Delete(llrb.Int(v)) }},
	}
	values := rand.New(rand.NewSource(opts.Seed)).Perm(opts.N)
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(3*3*opts.N,
			progressbar.OptionSetDescription("benchmarking"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
	}
	step := func(name string, f func(int)) time.Duration {
		if bar != nil {
			bar.Describe(name)
		}
		start := time.Now()
		for i, v := range values {
			f(v)
			if bar != nil && i%1024 == 1023 {
				bar.Add(1024)
			}
		}
		elapsed := time.Since(start)
		if bar != nil {
			bar.Add(len(values) % 1024)
		}
		return elapsed
	}
	results := make([]Result, 0, len(contenders))
	for _, c := range contenders {
		r := Result{Name: c.name}
		r.Insert = step(c.name+" insert", c.insert)
		if c.name == "scapegoat" {
			if !sg.IsBalanced() {
				return nil, fmt.Errorf("bench: scapegoat tree unbalanced after inserts:\n%s", sg.Balance())
			}
			start := time.Now()
			sg.SumInRange(opts.N/4, 3*opts.N/4)
			r.RangeSum = time.Since(start)
		}
		missed := 0
		r.Search = step(c.name+" search", func(v int) {
			if !c.search(v) {
				missed++
			}
		})
		if missed > 0 {
			return nil, fmt.Errorf("bench: %s lost %d values", c.name, missed)
		}
		r.Delete = step(c.name+" delete", c.delete)
		results = append(results, r)
		tracer().Infof("bench %s: %v / %v / %v", r.Name, r.Insert, r.Search, r.Delete)
	}
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}
	return results, nil
}

// PrintResults writes a timing table.
func PrintResults(p *render.Printer, results []Result) {
	p.Message(render.Highlight, "%-14s %12s %12s %12s", "", "insert", "search", "delete")
	for _, r := range results {
		p.Message(render.Plain, "%-14s %12v %12v %12v", r.Name,
			r.Insert.Round(time.Microsecond), r.Search.Round(time.Microsecond), r.Delete.Round(time.Microsecond))
	}
	for _, r := range results {
		if r.RangeSum > 0 {
			p.Message(render.Good, "range sum over half the values (%s): %v", r.Name, r.RangeSum)
		}
	}
}
