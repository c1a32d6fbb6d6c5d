// Package stack provides a persistent (immutable) LIFO stack built from shared
// cons cells.
//
// Every update operation returns a new Stack value and leaves the receiver
// unchanged, so any number of derived stacks can coexist and share structure:
//
//	s1 := stack.NewStack(1, 2)   // top -> (2, 1)
//	s2 := s1.Push(3)             // top -> (3, 2, 1); s1 unchanged
//	v, s3, ok := s2.Pop()        // v == 3, s3 shares all of s1's cells
//
// Push and Pop are O(1). The zero value is the empty stack and is ready to
// use.
//
// The queue package uses two of these stacks as the front/rear buffers of its
// amortized FIFO queue.
package stack
