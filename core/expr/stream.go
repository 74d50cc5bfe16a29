/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors
*/

package expr

// Stream is a read-only cursor over a finite sequence with one item of lookahead.
// Reads past the end return the sentinel instead of failing.
type Stream[T any] struct {
	items    []T
	next     int
	sentinel T
}

// NewStream creates a stream over items that yields sentinel once exhausted
func NewStream[T any](items []T, sentinel T) *Stream[T] {
	return &Stream[T]{items: items, sentinel: sentinel}
}

// Peek returns the item advance positions ahead of the cursor without consuming it
func (s *Stream[T]) Peek(advance int) T {
	i := s.next + advance
	if i < 0 || i >= len(s.items) {
		return s.sentinel
	}
	return s.items[i]
}

// Read returns the current item and moves the cursor forward.
// At the end it keeps returning the sentinel and the cursor stays put.
func (s *Stream[T]) Read() T {
	if s.next >= len(s.items) {
		return s.sentinel
	}
	item := s.items[s.next]
	s.next++
	return item
}

// IsEOF reports whether every item has been read
func (s *Stream[T]) IsEOF() bool {
	return s.next >= len(s.items)
}

// Pos returns the cursor position
func (s *Stream[T]) Pos() int {
	return s.next
}
