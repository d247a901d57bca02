/*
Package sequence provides a growable, index-addressable buffer of values.

A Sequence is used by the scapegoat tree as scratch space: a subtree is
flattened into a sequence in ascending order and then rebuilt from it.
The buffer is kept between uses, so repeated rebuilds of similar size
do not allocate.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sequence

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

// ErrIndexOutOfBounds signals an invalid positional index.
var ErrIndexOutOfBounds = errors.New("sequence: index out of bounds")

// Sequence is an amortized-growth buffer of values.
//
// The zero value is an empty sequence ready to use.
type Sequence[T any] struct {
	data []T
	size int
}

// New creates an empty sequence with an initial capacity of at least capacity.
func New[T any](capacity int) *Sequence[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Sequence[T]{data: make([]T, capacity)}
}

// Len returns the number of values in the sequence.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Cap returns the number of values the sequence can hold without growing.
func (s *Sequence[T]) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Append adds v at the end of the sequence, doubling the buffer if it is full.
func (s *Sequence[T]) Append(v T) {
	if s.size == len(s.data) {
		s.grow(s.size + 1)
	}
	s.data[s.size] = v
	s.size++
}

// Reserve makes sure the sequence can hold n values without growing.
func (s *Sequence[T]) Reserve(n int) {
	if n > len(s.data) {
		s.grow(n)
	}
}

func (s *Sequence[T]) grow(min int) {
	c := len(s.data)
	if c == 0 {
		c = 1
	}
	for c < min {
		c *= 2
	}
	tracer().Debugf("sequence: grow %d -> %d", len(s.data), c)
	nd := make([]T, c)
	copy(nd, s.data[:s.size])
	s.data = nd
}

// At returns the value at index i.
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, s.Len())
	}
	return s.data[i], nil
}

// MustAt returns the value at index i and panics if i is out of bounds.
// It is intended for callers which derived i from Len.
func (s *Sequence[T]) MustAt(i int) T {
	v, err := s.At(i)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// Set replaces the value at index i.
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, s.Len())
	}
	s.data[i] = v
	return nil
}

// Reset empties the sequence but keeps its buffer. Stale values are zeroed
// so the buffer does not keep them reachable.
func (s *Sequence[T]) Reset() {
	if s == nil {
		return
	}
	clear(s.data[:s.size])
	s.size = 0
}

// Values returns a view of the current values. The view is valid until the
// next call to Append, Reserve or Reset.
func (s *Sequence[T]) Values() []T {
	if s == nil {
		return nil
	}
	return s.data[:s.size:s.size]
}
