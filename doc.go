/*
Package scapegoat implements a weight-balanced binary search tree which keeps
itself height-bounded by occasional subtree rebuilds instead of rotations.

# Scapegoat Trees

A scapegoat tree stores distinct, totally ordered values. Nodes carry no
balance information at all: no colors, no heights, no cached subtree sizes.
Instead, the tree remembers its live node count and the historical peak of
that count. An insertion which lands deeper than

	⌊log(peak) / log(1/α)⌋

walks back up from the new leaf, measuring subtree sizes, until it finds an
ancestor (the scapegoat) whose heavier child holds more than α of its
weight. That ancestor's subtree is flattened into sorted order and rebuilt
perfectly balanced. Deletions never restructure locally; once the live count
has shrunk far enough below the peak, the whole tree is rebuilt.
With the default α = 2/3 the height of a tree with n values stays at or
below ⌊log_1.5(n)⌋.

From Galperin and Rivest, 1993:

	The amortized complexity of deletion and insertion is O(log n), while
	the worst-case complexity of searches is O(log n). Unlike most other
	balanced-tree schemes, scapegoat trees require no extra storage per node.

On top of the core the package provides order statistics (min, max,
successor, k-th smallest), range sums and range collection, an in-order
iterator, traversal renderers, a balance report, content-based equality,
merge, split, deep copy and move, and an undo/redo history of all
top-level mutations (see package cmdlog).

Trees are not safe for concurrent use. A tree is meant to be owned by one
caller at a time; every operation runs to completion before returning.
A rebuild allocates a fresh node for every value of the rebuilt subtree;
running out of memory in the middle of a rebuild is fatal for the process.

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package scapegoat

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

var (
	// ErrNotFound is flagged whenever a value is not present in a tree.
	ErrNotFound = errors.New("scapegoat: value not found")
	// ErrEmptyTree is flagged by queries which need at least one value.
	// It matches ErrNotFound as well.
	ErrEmptyTree = fmt.Errorf("%w: tree is empty", ErrNotFound)
	// ErrOutOfRange is flagged for ranks outside [1, Len()].
	ErrOutOfRange = errors.New("scapegoat: rank out of range")
	// ErrNoSuccessor is flagged when asking for the successor of the maximum.
	ErrNoSuccessor = errors.New("scapegoat: value has no successor")
	// ErrNoPredecessor is flagged when asking for the predecessor of the minimum.
	ErrNoPredecessor = errors.New("scapegoat: value has no predecessor")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("scapegoat: invalid configuration")
	// ErrInvalidStructure is flagged by Check for a violated tree invariant.
	ErrInvalidStructure = errors.New("scapegoat: invalid tree structure")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
