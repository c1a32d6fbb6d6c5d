package queue

import (
	"fmt"
	"strings"

	"github.com/progfunc-2025-q2/aula-estruturas-funcionais/internal/util"
)

// naiveQueue implements Queue with a single slice, front to back.
// elements[0] is the next value Dequeue returns.
//
// Enqueue clones the slice, so derived queues never share a writable backing
// array. The linear enqueue cost is deliberate: this strategy exists as a
// correctness baseline for the amortized one.
type naiveQueue[T any] struct {
	elements []T
}

var _ Queue[int] = naiveQueue[int]{}

// NewNaiveQueue creates a slice-backed persistent queue holding items in
// front-to-back order.
func NewNaiveQueue[T any](items ...T) Queue[T] {
	return naiveQueue[T]{elements: util.CloneSlice(items, 0)}
}

// Enqueue returns a new queue with v at the back. O(n) due to the clone.
func (q naiveQueue[T]) Enqueue(v T) Queue[T] {
	elements := util.CloneSlice(q.elements, 1)
	return naiveQueue[T]{elements: append(elements, v)}
}

// Dequeue returns the front value and the queue without it.
func (q naiveQueue[T]) Dequeue() (T, Queue[T], bool) {
	if len(q.elements) == 0 {
		var zero T
		return zero, q, false
	}
	// Re-slicing shares the backing array with the receiver. That is safe
	// because Enqueue always clones before appending.
	return q.elements[0], naiveQueue[T]{elements: q.elements[1:]}, true
}

// Peek returns the front value without removing it.
func (q naiveQueue[T]) Peek() (T, bool) {
	if len(q.elements) == 0 {
		var zero T
		return zero, false
	}
	return q.elements[0], true
}

// PeekBack returns the most recently enqueued value.
func (q naiveQueue[T]) PeekBack() (T, bool) {
	if len(q.elements) == 0 {
		var zero T
		return zero, false
	}
	return q.elements[len(q.elements)-1], true
}

// IsEmpty returns true if the queue holds no values.
func (q naiveQueue[T]) IsEmpty() bool {
	return len(q.elements) == 0
}

// Length returns the number of values in the queue.
func (q naiveQueue[T]) Length() int {
	return len(q.elements)
}

// String renders the queue front to back, e.g. "front -> (42, 43)".
func (q naiveQueue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("front -> (")
	for i, v := range q.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteString(")")
	return sb.String()
}
