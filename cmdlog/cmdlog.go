/*
Package cmdlog records reversible tree mutations for undo and redo.

A Log holds two stacks of Commands. Every top-level mutation is recorded on
the undo stack, which clears the redo stack. Undo pops a command, hands it
to the caller for inverse application and moves it to the redo stack; Redo
does the reverse. Commands between a BatchStart and a BatchEnd marker are
undone and redone as a single step.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cmdlog

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

// ErrEmptyLog signals that there is nothing to undo or redo. Log.Undo and
// Log.Redo do not return it; it is used by clients which want to surface
// the condition.
var ErrEmptyLog = errors.New("cmdlog: nothing to replay")

// ErrBrokenBatch signals a batch bracket without its matching marker.
var ErrBrokenBatch = errors.New("cmdlog: unbalanced batch markers")

// Kind tags a Command.
type Kind int8

// Kinds of commands.
const (
	Insert Kind = iota
	Delete
	BatchStart
	BatchEnd
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case BatchStart:
		return "batch-start"
	case BatchEnd:
		return "batch-end"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// Command fully describes one reversible mutation.
type Command[T any] struct {
	Kind  Kind
	Value T // unused for batch markers
}

// Inverse returns the command which undoes c. Batch markers are their own inverse.
func (c Command[T]) Inverse() Command[T] {
	switch c.Kind {
	case Insert:
		return Command[T]{Kind: Delete, Value: c.Value}
	case Delete:
		return Command[T]{Kind: Insert, Value: c.Value}
	}
	return c
}

func (c Command[T]) String() string {
	if c.Kind == BatchStart || c.Kind == BatchEnd {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s(%v)", c.Kind, c.Value)
}

// Applier applies a single (insert or delete) command to a tree.
type Applier[T any] func(Command[T]) error

// Log is a pair of undo/redo stacks.
//
// The zero value is not usable; create logs with New.
type Log[T any] struct {
	undo *arraystack.Stack
	redo *arraystack.Stack
}

// New creates an empty log.
func New[T any]() *Log[T] {
	return &Log[T]{
		undo: arraystack.New(),
		redo: arraystack.New(),
	}
}

// Record pushes cmd onto the undo stack and clears the redo stack.
func (l *Log[T]) Record(cmd Command[T]) {
	l.undo.Push(cmd)
	l.redo.Clear()
}

// RecordBatch records cmds bracketed by batch markers. An empty batch records
// nothing and leaves the redo stack alone.
func (l *Log[T]) RecordBatch(cmds []Command[T]) {
	if len(cmds) == 0 {
		return
	}
	l.undo.Push(Command[T]{Kind: BatchStart})
	for _, c := range cmds {
		l.undo.Push(c)
	}
	l.undo.Push(Command[T]{Kind: BatchEnd})
	l.redo.Clear()
}

// CanUndo reports whether there is a step to undo.
func (l *Log[T]) CanUndo() bool {
	return !l.undo.Empty()
}

// CanRedo reports whether there is a step to redo.
func (l *Log[T]) CanRedo() bool {
	return !l.redo.Empty()
}

// UndoLen returns the number of commands (markers included) on the undo stack.
func (l *Log[T]) UndoLen() int {
	return l.undo.Size()
}

// RedoLen returns the number of commands (markers included) on the redo stack.
func (l *Log[T]) RedoLen() int {
	return l.redo.Size()
}

// Clear drops all history.
func (l *Log[T]) Clear() {
	l.undo.Clear()
	l.redo.Clear()
}

// Undo pops one step from the undo stack, calls apply with the inverse of each
// of its commands (newest first) and moves the step to the redo stack.
// It returns false if there was nothing to undo. If apply fails inside a
// batch, the commands of the batch already applied are re-applied in reverse
// and the step stays on the undo stack.
func (l *Log[T]) Undo(apply Applier[T]) (bool, error) {
	return l.replay(l.undo, l.redo, BatchEnd, BatchStart,
		func(c Command[T]) error { return apply(c.Inverse()) },
		apply)
}

// Redo pops one step from the redo stack, calls apply with each of its commands
// (oldest first) and moves the step back to the undo stack.
// It returns false if there was nothing to redo. Failures inside a batch are
// rolled back as for Undo.
func (l *Log[T]) Redo(apply Applier[T]) (bool, error) {
	return l.replay(l.redo, l.undo, BatchStart, BatchEnd,
		apply,
		func(c Command[T]) error { return apply(c.Inverse()) })
}

// replay moves one step from src to dst. A step is either a single command or
// a run from an opening marker to its closing marker; the bracket arrives on
// dst in mirrored order. forward performs a command, backward reverts it.
// A step which cannot be completed is reverted and returned to src.
func (l *Log[T]) replay(src, dst *arraystack.Stack, open, close Kind, forward, backward Applier[T]) (bool, error) {
	top, ok := pop[T](src)
	if !ok {
		tracer().Debugf("cmdlog: %v", ErrEmptyLog)
		return false, nil
	}
	if top.Kind != open {
		if err := forward(top); err != nil {
			src.Push(top)
			return true, err
		}
		dst.Push(top)
		return true, nil
	}
	tracer().Debugf("cmdlog: replaying batch")
	step := []Command[T]{top}
	applied := 0
	abort := func(err error) (bool, error) {
		for i := applied; i > 0; i-- {
			if rerr := backward(step[i]); rerr != nil {
				tracer().Errorf("cmdlog: rollback of %v failed: %v", step[i], rerr)
				err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
				break
			}
		}
		for i := len(step) - 1; i >= 0; i-- {
			src.Push(step[i])
		}
		return true, err
	}
	for {
		c, ok := pop[T](src)
		if !ok {
			return abort(ErrBrokenBatch)
		}
		step = append(step, c)
		if c.Kind == close {
			break
		}
		if c.Kind == open {
			return abort(ErrBrokenBatch)
		}
		if err := forward(c); err != nil {
			return abort(err)
		}
		applied++
	}
	for _, c := range step {
		dst.Push(c)
	}
	return true, nil
}

// Undoable returns the commands on the undo stack, newest first.
func (l *Log[T]) Undoable() []Command[T] {
	return values[T](l.undo)
}

// Redoable returns the commands on the redo stack, next to redo first.
func (l *Log[T]) Redoable() []Command[T] {
	return values[T](l.redo)
}

func pop[T any](s *arraystack.Stack) (Command[T], bool) {
	v, ok := s.Pop()
	if !ok {
		return Command[T]{}, false
	}
	return v.(Command[T]), true
}

func values[T any](s *arraystack.Stack) []Command[T] {
	vs := s.Values()
	cmds := make([]Command[T], len(vs))
	for i, v := range vs {
		cmds[i] = v.(Command[T])
	}
	return cmds
}
