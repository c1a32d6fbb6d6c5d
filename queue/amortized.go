package queue

import (
	"fmt"
	"strings"

	"github.com/progfunc-2025-q2/aula-estruturas-funcionais/internal/util"
	"github.com/progfunc-2025-q2/aula-estruturas-funcionais/stack"
)

// amortizedQueue implements Queue with the two-stacks design.
//
// front holds values in dequeue order (top of the stack is the next value
// out); rear holds values in reverse order (most recently enqueued on top).
// The logical queue content, front to back, is always front followed by the
// reversal of rear, and size always equals the sum of both lengths.
//
// rear is reversed into front only when a dequeue finds front empty. Each
// value is therefore moved at most once between the stacks, which makes every
// operation amortized O(1) even though an individual dequeue may cost O(n).
type amortizedQueue[T any] struct {
	front stack.Stack[T]
	rear  stack.Stack[T]
	size  int
}

var _ Queue[int] = amortizedQueue[int]{}

// NewAmortizedQueue creates a two-stacks persistent queue holding items in
// front-to-back order. The initial items are placed entirely in the front
// stack.
func NewAmortizedQueue[T any](items ...T) Queue[T] {
	var front stack.Stack[T]
	for i := len(items) - 1; i >= 0; i-- {
		front = front.Push(items[i])
	}
	return amortizedQueue[T]{front: front, size: len(items)}
}

// Enqueue returns a new queue with v at the back. O(1): v is pushed onto
// rear and front is untouched.
func (q amortizedQueue[T]) Enqueue(v T) Queue[T] {
	return amortizedQueue[T]{
		front: q.front,
		rear:  q.rear.Push(v),
		size:  q.size + 1,
	}
}

// Dequeue returns the front value and the queue without it. When front is
// empty the rear stack is first reversed into a fresh front; the receiver
// keeps its own buffers untouched.
func (q amortizedQueue[T]) Dequeue() (T, Queue[T], bool) {
	if q.size == 0 {
		var zero T
		return zero, q, false
	}

	front, rear := q.front, q.rear
	if front.IsEmpty() {
		front, rear = rear.Reverse(), stack.Stack[T]{}
	}

	v, rest, _ := front.Pop()
	return v, amortizedQueue[T]{front: rest, rear: rear, size: q.size - 1}, true
}

// Peek returns the front value without removing it. When front is empty the
// value is read from the bottom of rear; the reversal is not performed and
// not persisted.
func (q amortizedQueue[T]) Peek() (T, bool) {
	if v, ok := q.front.Peek(); ok {
		return v, true
	}
	return q.rear.Bottom()
}

// PeekBack returns the most recently enqueued value: the top of rear, or the
// bottom of front when rear is empty.
func (q amortizedQueue[T]) PeekBack() (T, bool) {
	if v, ok := q.rear.Peek(); ok {
		return v, true
	}
	return q.front.Bottom()
}

// IsEmpty returns true if both stacks are empty.
func (q amortizedQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Length returns the number of values in the queue.
func (q amortizedQueue[T]) Length() int {
	return q.size
}

// String renders both buffers for diagnostics, each in front-to-back reading
// order, e.g. "front -> (2, 3) | rear -> (42, 43)". rear is displayed in
// enqueue order even though it is stored newest-first.
func (q amortizedQueue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("front -> (")
	writeValues(&sb, stackValues(q.front))
	sb.WriteString(") | rear -> (")
	writeValues(&sb, util.ReverseSlice(stackValues(q.rear)))
	sb.WriteString(")")
	return sb.String()
}

// stackValues collects s top-down into a slice.
func stackValues[T any](s stack.Stack[T]) []T {
	values := make([]T, 0, s.Length())
	s.Each(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

func writeValues[T any](sb *strings.Builder, values []T) {
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%v", v)
	}
}
