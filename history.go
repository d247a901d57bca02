package scapegoat

import (
	"fmt"

	"github.com/npillmayer/scapegoat/cmdlog"
)

// Undo reverts the most recent mutation (or batch of mutations). It returns
// false if there is nothing to undo; this is not an error.
func (t *Tree[T]) Undo() (bool, error) {
	return t.replay(t.history.Undo)
}

// Redo re-applies the most recently undone mutation (or batch). It returns
// false if there is nothing to redo; this is not an error.
func (t *Tree[T]) Redo() (bool, error) {
	return t.replay(t.history.Redo)
}

// CanUndo reports whether there is a step to undo.
func (t *Tree[T]) CanUndo() bool {
	return t.history.CanUndo()
}

// CanRedo reports whether there is a step to redo.
func (t *Tree[T]) CanRedo() bool {
	return t.history.CanRedo()
}

// History returns the commands on the undo stack, newest first.
func (t *Tree[T]) History() []cmdlog.Command[T] {
	return t.history.Undoable()
}

// ForgetHistory drops all undo and redo information.
func (t *Tree[T]) ForgetHistory() {
	t.history.Clear()
}

// replay runs one step of the history with recording switched off. The flag
// is reset on every exit path.
func (t *Tree[T]) replay(step func(cmdlog.Applier[T]) (bool, error)) (bool, error) {
	t.replaying = true
	defer func() { t.replaying = false }()
	return step(t.apply)
}

// apply executes a single command on behalf of the history.
func (t *Tree[T]) apply(cmd cmdlog.Command[T]) error {
	assert(t.replaying, "history applied outside of replay")
	tracer().Debugf("replay %s", cmd)
	switch cmd.Kind {
	case cmdlog.Insert:
		if !t.insert(cmd.Value) {
			return fmt.Errorf("%w: replayed insert of present value %v", ErrInvalidStructure, cmd.Value)
		}
	case cmdlog.Delete:
		if !t.delete(cmd.Value) {
			return fmt.Errorf("%w: %v", ErrNotFound, cmd.Value)
		}
	}
	return nil
}
