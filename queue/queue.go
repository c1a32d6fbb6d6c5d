package queue

// Queue defines the contract shared by all persistent queue strategies.
//
// A Queue value is immutable: Enqueue and Dequeue return the updated queue
// instead of modifying the receiver, and the receiver stays valid afterwards.
// The zero-valued element together with ok == false signals an empty queue;
// no operation can fail in any other way.
type Queue[T any] interface {
	// Enqueue returns a new queue with v added at the back.
	Enqueue(v T) Queue[T]
	// Dequeue returns the front value and the queue without it.
	// On an empty queue it returns the zero value, the receiver unchanged
	// and ok == false.
	Dequeue() (v T, rest Queue[T], ok bool)
	// Peek returns the front value without removing it; ok is false iff the
	// queue is empty.
	Peek() (v T, ok bool)
	// PeekBack returns the most recently enqueued value; ok is false iff the
	// queue is empty.
	PeekBack() (v T, ok bool)
	// IsEmpty returns true if the queue holds no values.
	IsEmpty() bool
	// Length returns the number of values in the queue.
	Length() int
	// String renders the queue contents front to back for diagnostics.
	// The exact format is not a stability contract.
	String() string
}
