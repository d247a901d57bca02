package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/scapegoat/render"
)

var errQuit = errors.New("quit")

// REPL holds the state of an interactive session on two trees.
type REPL struct {
	trees   map[string]*scapegoat.Tree[int]
	current string
	printer *render.Printer
	out     io.Writer
}

// NewREPL creates a session with two empty trees A and B, A selected.
func NewREPL(alpha float64, printer *render.Printer, out io.Writer) (*REPL, error) {
	r := &REPL{
		trees:   make(map[string]*scapegoat.Tree[int]),
		current: "a",
		printer: printer,
		out:     out,
	}
	for _, name := range []string{"a", "b"} {
		t, err := scapegoat.NewWithConfig[int](scapegoat.Config{Alpha: alpha})
		if err != nil {
			return nil, err
		}
		r.trees[name] = t
	}
	return r, nil
}

// Run reads commands line by line until EOF or quit.
func (r *REPL) Run(in *bufio.Reader) error {
	fmt.Fprintln(r.out, "Scapegoat tree console. Type 'help' for available commands, 'quit' to exit")
	for {
		fmt.Fprintf(r.out, "sgtree[%s]> ", strings.ToUpper(r.current))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(r.out)
			return nil
		}
		if err := r.Execute(line); errors.Is(err, errQuit) {
			return nil
		} else if err != nil {
			r.printer.Message(render.Bad, "error: %v", err)
		}
	}
}

func (r *REPL) tree() *scapegoat.Tree[int] {
	return r.trees[r.current]
}

func (r *REPL) other() *scapegoat.Tree[int] {
	if r.current == "a" {
		return r.trees["b"]
	}
	return r.trees["a"]
}

type command struct {
	args  string // argument synopsis for help
	help  string
	arity int // -1 for one or more
	run   func(r *REPL, nums []int) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"insert": {"v...", "insert values one by one", -1, func(r *REPL, nums []int) error {
			for _, v := range nums {
				if !r.tree().Insert(v) {
					r.printer.Message(render.Highlight, "%d already present", v)
				}
			}
			return nil
		}},
		"delete": {"v...", "delete values one by one", -1, func(r *REPL, nums []int) error {
			for _, v := range nums {
				if err := r.tree().Delete(v); err != nil {
					return err
				}
			}
			return nil
		}},
		"batch-insert": {"v...", "insert values as one undoable step", -1, func(r *REPL, nums []int) error {
			fmt.Fprintf(r.out, "inserted %d\n", r.tree().InsertBatch(nums...))
			return nil
		}},
		"batch-delete": {"v...", "delete values as one undoable step", -1, func(r *REPL, nums []int) error {
			fmt.Fprintf(r.out, "deleted %d\n", r.tree().DeleteBatch(nums...))
			return nil
		}},
		"search": {"v", "look up a value", 1, func(r *REPL, nums []int) error {
			if r.tree().Contains(nums[0]) {
				fmt.Fprintf(r.out, "%d found\n", nums[0])
			} else {
				fmt.Fprintf(r.out, "%d not found\n", nums[0])
			}
			return nil
		}},
		"inorder":   {"", "list values in order", 0, walk(scapegoat.InOrder)},
		"preorder":  {"", "list values in pre-order", 0, walk(scapegoat.PreOrder)},
		"postorder": {"", "list values in post-order", 0, walk(scapegoat.PostOrder)},
		"levels":    {"", "list values level by level", 0, walk(scapegoat.LevelOrder)},
		"draw": {"", "draw the tree", 0, func(r *REPL, _ []int) error {
			return render.Tree(r.printer, r.tree())
		}},
		"dot": {"", "print the tree in Graphviz DOT format", 0, func(r *REPL, _ []int) error {
			return scapegoat.ToDot(r.tree(), r.out)
		}},
		"balance": {"", "report height and balance", 0, func(r *REPL, _ []int) error {
			return r.printer.Report(r.tree().Balance())
		}},
		"check": {"", "verify tree invariants", 0, func(r *REPL, _ []int) error {
			if err := r.tree().Check(); err != nil {
				return err
			}
			r.printer.Message(render.Good, "ok")
			return nil
		}},
		"min": {"", "smallest value", 0, func(r *REPL, _ []int) error {
			return r.show(r.tree().Min())
		}},
		"max": {"", "largest value", 0, func(r *REPL, _ []int) error {
			return r.show(r.tree().Max())
		}},
		"succ": {"v", "successor of a value", 1, func(r *REPL, nums []int) error {
			return r.show(r.tree().Successor(nums[0]))
		}},
		"pred": {"v", "predecessor of a value", 1, func(r *REPL, nums []int) error {
			return r.show(r.tree().Predecessor(nums[0]))
		}},
		"kth": {"k", "k-th smallest value", 1, func(r *REPL, nums []int) error {
			return r.show(r.tree().KthSmallest(nums[0]))
		}},
		"rank": {"v", "position of a value in order", 1, func(r *REPL, nums []int) error {
			return r.show(r.tree().Rank(nums[0]))
		}},
		"sum": {"lo hi", "sum of values in [lo,hi]", 2, func(r *REPL, nums []int) error {
			fmt.Fprintln(r.out, r.tree().SumInRange(nums[0], nums[1]))
			return nil
		}},
		"range": {"lo hi", "values in [lo,hi]", 2, func(r *REPL, nums []int) error {
			return render.Values(r.printer, "range", r.tree().ValuesInRange(nums[0], nums[1]))
		}},
		"split": {"v", "keep values ≤ v, move the rest to the other tree", 1, func(r *REPL, nums []int) error {
			lower, upper := r.tree().Split(nums[0])
			r.tree().MoveFrom(lower)
			r.other().MoveFrom(upper)
			return nil
		}},
		"merge": {"", "merge the other tree into this one", 0, func(r *REPL, _ []int) error {
			r.tree().MoveFrom(scapegoat.Merge(r.tree(), r.other()))
			return nil
		}},
		"copy": {"", "replace the other tree with a copy of this one", 0, func(r *REPL, _ []int) error {
			r.other().MoveFrom(r.tree().Clone())
			return nil
		}},
		"move": {"", "move this tree into the other one", 0, func(r *REPL, _ []int) error {
			r.other().MoveFrom(r.tree())
			return nil
		}},
		"equal": {"", "compare A and B", 0, func(r *REPL, _ []int) error {
			if scapegoat.Equal(r.trees["a"], r.trees["b"]) {
				fmt.Fprintln(r.out, "A and B are equal")
			} else {
				fmt.Fprintln(r.out, "A and B differ")
			}
			return nil
		}},
		"empty": {"", "test for emptiness", 0, func(r *REPL, _ []int) error {
			fmt.Fprintf(r.out, "empty: %v (%d values)\n", r.tree().IsEmpty(), r.tree().Len())
			return nil
		}},
		"clear": {"", "remove all values", 0, func(r *REPL, _ []int) error {
			r.tree().Clear()
			return nil
		}},
		"undo": {"", "undo the last step", 0, func(r *REPL, _ []int) error {
			if ok, err := r.tree().Undo(); err != nil {
				return err
			} else if !ok {
				fmt.Fprintln(r.out, "nothing to undo")
			}
			return nil
		}},
		"redo": {"", "redo the last undone step", 0, func(r *REPL, _ []int) error {
			if ok, err := r.tree().Redo(); err != nil {
				return err
			} else if !ok {
				fmt.Fprintln(r.out, "nothing to redo")
			}
			return nil
		}},
		"history": {"", "list undoable commands, newest first", 0, func(r *REPL, _ []int) error {
			return render.Values(r.printer, "history", r.tree().History())
		}},
	}
}

func walk(tr scapegoat.Traversal) func(*REPL, []int) error {
	return func(r *REPL, _ []int) error {
		fmt.Fprintf(r.out, "%s: %s\n", tr, r.tree().Display(tr))
		return nil
	}
}

func (r *REPL) show(v int, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, v)
	return nil
}

// Execute runs a single command line.
func (r *REPL) Execute(line string) error {
	words, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	name, args := strings.ToLower(words[0]), words[1:]
	switch name {
	case "quit", "exit":
		return errQuit
	case "help":
		r.help()
		return nil
	case "use":
		if len(args) != 1 || r.trees[strings.ToLower(args[0])] == nil {
			return fmt.Errorf("usage: use a|b")
		}
		r.current = strings.ToLower(args[0])
		return nil
	case "alpha":
		if len(args) == 0 {
			fmt.Fprintf(r.out, "α = %.4g\n", r.tree().Alpha())
			return nil
		}
		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		return r.tree().SetAlpha(a)
	}
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", name)
	}
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	if cmd.arity >= 0 && len(nums) != cmd.arity || cmd.arity < 0 && len(nums) == 0 {
		return fmt.Errorf("usage: %s %s", name, cmd.args)
	}
	return cmd.run(r, nums)
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))
	for _, a := range args {
		for _, f := range strings.FieldsFunc(a, func(c rune) bool { return c == ',' }) {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("not an integer: %q", f)
			}
			nums = append(nums, n)
		}
	}
	return nums, nil
}

func (r *REPL) help() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(r.out, "Commands act on the selected tree:")
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(r.out, "  %-22s %s\n", name+" "+c.args, c.help)
	}
	fmt.Fprintf(r.out, "  %-22s %s\n", "alpha [a]", "show or set the balance factor")
	fmt.Fprintf(r.out, "  %-22s %s\n", "use a|b", "select a tree")
	fmt.Fprintf(r.out, "  %-22s %s\n", "quit", "leave the console")
}
