// Package aaset implements an ordered set on top of an AA tree.
//
// An AA tree is a binary search tree balanced with integer levels instead of
// red/black colours. Insert, Erase, Find and LowerBound run in O(log n);
// every node also keeps a link to its parent so iterators can step forward
// and backward without going back to the root.
//
// A Set is not safe for concurrent use. Any mutation may invalidate
// outstanding iterators.
package aaset

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/cosmos/iavl-bench/aaset/internal"
)

// Set is an ordered collection of distinct values.
// The zero value is not usable; construct sets with New, NewFunc, Of or
// FromSeq.
type Set[T any] struct {
	root *internal.Node[T]
	size int
	less internal.Less[T]
}

// New returns an empty set ordered by the natural order of T.
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc(cmp.Less[T])
}

// NewFunc returns an empty set ordered by less, which must be a strict weak
// ordering. Values for which neither less(a, b) nor less(b, a) holds are
// considered equal.
func NewFunc[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{less: less}
}

// Of returns a set holding values; duplicates are skipped.
func Of[T cmp.Ordered](values ...T) *Set[T] {
	return OfFunc(cmp.Less[T], values...)
}

// OfFunc is like Of with a custom ordering.
func OfFunc[T any](less func(a, b T) bool, values ...T) *Set[T] {
	s := NewFunc(less)
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// FromSeq returns a set holding every value produced by seq.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	return FromSeqFunc(cmp.Less[T], seq)
}

// FromSeqFunc is like FromSeq with a custom ordering.
func FromSeqFunc[T any](less func(a, b T) bool, seq iter.Seq[T]) *Set[T] {
	s := NewFunc(less)
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// Clone returns a deep copy of s. The copy shares no nodes with s.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		root: internal.Clone(s.root),
		size: s.size,
		less: s.less,
	}
}

// Assign replaces the contents and ordering of s with a deep copy of other.
// Assigning a set to itself is a no-op.
func (s *Set[T]) Assign(other *Set[T]) {
	if s == other {
		return
	}
	s.root = internal.Clone(other.root)
	s.size = other.size
	s.less = other.less
}

// Size returns the number of values in the set.
func (s *Set[T]) Size() int {
	return s.size
}

// Empty reports whether the set holds no values.
func (s *Set[T]) Empty() bool {
	return s.size == 0
}

// Height returns the number of nodes on the longest root-to-leaf path.
// It walks the whole tree.
func (s *Set[T]) Height() int {
	return internal.Height(s.root)
}

// Insert adds v to the set. It does nothing if an equal value is present.
func (s *Set[T]) Insert(v T) {
	root, inserted := internal.Insert(s.less, s.root, v)
	if !inserted {
		return
	}
	s.root = root
	s.size++
}

// Erase removes v from the set. It does nothing if v is absent.
func (s *Set[T]) Erase(v T) {
	root, erased := internal.Erase(s.less, s.root, v)
	if !erased {
		return
	}
	s.root = root
	s.size--
}

// Clear removes every value from the set.
func (s *Set[T]) Clear() {
	s.root = nil
	s.size = 0
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	return internal.Find(s.less, s.root, v) != nil
}

// Find returns an iterator at v, or End() if v is absent.
func (s *Set[T]) Find(v T) Iterator[T] {
	return Iterator[T]{set: s, node: internal.Find(s.less, s.root, v)}
}

// LowerBound returns an iterator at the smallest value not less than v, or
// End() if there is none.
func (s *Set[T]) LowerBound(v T) Iterator[T] {
	return Iterator[T]{set: s, node: internal.LowerBound(s.less, s.root, v)}
}

// Begin returns an iterator at the smallest value, or End() for an empty set.
func (s *Set[T]) Begin() Iterator[T] {
	return Iterator[T]{set: s, node: internal.Min(s.root)}
}

// End returns the iterator one past the largest value.
func (s *Set[T]) End() Iterator[T] {
	return Iterator[T]{set: s}
}

// All returns an iterator over the values in ascending order.
// The set must not be modified during iteration.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := internal.Min(s.root); node != nil; node = internal.Next(node) {
			if !yield(node.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values in descending order.
// The set must not be modified during iteration.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := internal.Max(s.root); node != nil; node = internal.Prev(node) {
			if !yield(node.Value()) {
				return
			}
		}
	}
}

// Verify checks the tree invariants and that the cached size matches the
// number of nodes. It is meant for tests and debugging and walks the whole
// tree.
func (s *Set[T]) Verify() error {
	count, err := internal.Verify(s.less, s.root)
	if err != nil {
		return err
	}
	if count != s.size {
		return fmt.Errorf("size is %d but the tree holds %d nodes", s.size, count)
	}
	return nil
}
