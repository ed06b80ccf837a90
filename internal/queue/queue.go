// Package queue provides FIFO queue implementations for latency benchmarking.
//
// This package offers several implementations of the Queue interface:
//   - Deque: Growable ring buffer backed by a single slice
//   - LinkedList: Doubly linked list (one allocation per element)
//   - ChannelQueue: Buffered channel sized up front
//
// All implementations are single-goroutine data structures. The benchmark
// harness drives them from one goroutine only, so none of them take locks;
// timing differences come from the data structure alone.
package queue

// Queue is an unbounded first-in-first-out queue.
//
// Every benchmarked structure is driven through this interface so that each
// one sees the identical call sequence.
type Queue[T any] interface {
	// Enqueue appends an item at the back of the queue.
	Enqueue(T)

	// Dequeue removes and returns the item at the front of the queue.
	// Returns false if the queue is empty.
	Dequeue() (T, bool)

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool
}
