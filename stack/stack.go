package stack

import (
	"fmt"
	"strings"
)

// cell is a single immutable cons cell. Cells are never modified after
// creation, which is what makes sharing tails between stacks safe.
type cell[T any] struct {
	value T
	next  *cell[T]
}

// Stack is a persistent LIFO stack. The zero value is the empty stack.
//
// Stack values are cheap to copy; update operations return a new Stack that
// shares cells with the receiver wherever possible.
type Stack[T any] struct {
	head   *cell[T]
	length int
}

// NewStack creates a stack holding items, pushed in argument order: the last
// item ends up on top.
func NewStack[T any](items ...T) Stack[T] {
	var s Stack[T]
	for _, v := range items {
		s = s.Push(v)
	}
	return s
}

// Push returns a new stack with v on top. The receiver is unchanged. O(1).
func (s Stack[T]) Push(v T) Stack[T] {
	return Stack[T]{
		head:   &cell[T]{value: v, next: s.head},
		length: s.length + 1,
	}
}

// Pop returns the top value and the stack without it. On an empty stack it
// returns the zero value, the same empty stack and false. O(1).
func (s Stack[T]) Pop() (T, Stack[T], bool) {
	if s.head == nil {
		var zero T
		return zero, s, false
	}
	return s.head.value, Stack[T]{head: s.head.next, length: s.length - 1}, true
}

// Peek returns the top value without removing it; false iff the stack is
// empty.
func (s Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.value, true
}

// Bottom returns the oldest value, the one pushed first among those still
// present; false iff the stack is empty. O(n).
func (s Stack[T]) Bottom() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	c := s.head
	for c.next != nil {
		c = c.next
	}
	return c.value, true
}

// IsEmpty returns true if the stack holds no values.
func (s Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Length returns the number of values in the stack.
func (s Stack[T]) Length() int {
	return s.length
}

// Reverse returns a new stack with the values in reverse order: the bottom of
// the receiver becomes the top of the result. The receiver is unchanged. O(n).
func (s Stack[T]) Reverse() Stack[T] {
	var r Stack[T]
	for c := s.head; c != nil; c = c.next {
		r = r.Push(c.value)
	}
	return r
}

// Each calls fn for every value from top to bottom, stopping early if fn
// returns false.
func (s Stack[T]) Each(fn func(v T) bool) {
	for c := s.head; c != nil; c = c.next {
		if !fn(c.value) {
			return
		}
	}
}

// String renders the stack from top to bottom, e.g. "top -> (3, 2, 1)".
// The format is for diagnostics only.
func (s Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteString("top -> (")
	first := true
	s.Each(func(v T) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
		return true
	})
	sb.WriteString(")")
	return sb.String()
}
