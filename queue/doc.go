// Package queue provides a persistent (immutable) FIFO queue with two
// interchangeable strategies behind one generic contract.
//
// Every update operation returns a new Queue value; the receiver is never
// modified, so older versions of a queue remain valid after any number of
// updates.
//
// Strategies:
//   - NewNaiveQueue: a single slice, front to back. Enqueue copies the
//     elements (linear cost). Intended as an easy-to-verify correctness
//     baseline.
//   - NewAmortizedQueue: the classic two-stacks design. Values are enqueued
//     onto a rear stack in O(1) and dequeued from a front stack; when the
//     front runs dry the rear is reversed into it, at most once per element,
//     giving amortized O(1) per operation.
//
// Both strategies observe identical semantics; callers pick one at
// construction time and use it through the Queue interface.
//
// Usage Example:
//
//	q := queue.NewAmortizedQueue(1, 2, 3)
//	q = q.Enqueue(4)
//
//	v, rest, ok := q.Dequeue() // v == 1, ok == true
//	_ = q.Length()             // still 4: q is unchanged
//	_ = rest.Length()          // 3
//
// Dequeue and the peek operations report emptiness with a false ok result;
// no operation panics or returns an error.
package queue
