package aaset

import "github.com/cosmos/iavl-bench/aaset/internal"

// Iterator is a cursor over a Set. The zero node denotes the position one
// past the largest value, as returned by End.
//
// Iterators are plain values and can be compared with ==: two iterators are
// equal iff they belong to the same set and point at the same node.
// An iterator is invalidated by any mutation of its set; using it afterwards
// has unspecified results.
type Iterator[T any] struct {
	set  *Set[T]
	node *internal.Node[T]
}

// Valid reports whether the iterator points at a value, i.e. is not End().
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the value under the cursor. It panics on End().
func (it Iterator[T]) Value() T {
	if it.node == nil {
		panic("aaset: Value called on end iterator")
	}
	return it.node.Value()
}

// Equal reports whether it and other are the same position of the same set.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it == other
}

// Next moves the cursor to the next larger value, or to End() from the
// largest one. It does nothing on End().
func (it *Iterator[T]) Next() {
	if it.node == nil {
		return
	}
	it.node = internal.Next(it.node)
}

// Prev moves the cursor to the next smaller value. From End() it moves to
// the largest value and panics if the set is empty; from the smallest value
// it moves to End().
func (it *Iterator[T]) Prev() {
	if it.node == nil {
		last := internal.Max(it.set.root)
		if last == nil {
			panic("aaset: Prev called on end iterator of an empty set")
		}
		it.node = last
		return
	}
	it.node = internal.Prev(it.node)
}
