package queue

import (
	"github.com/gammazero/deque"
)

// Deque wraps a growable ring-buffer deque as a Queue.
//
// Items live in one power-of-two slice that doubles when full, so this is the
// contiguous-memory counterpart to LinkedList. A Deque created with
// NewDequeWithCapacity(n) never grows while it holds n items or fewer.
type Deque[T any] struct {
	d deque.Deque[T]
}

// NewDeque creates an empty Deque that allocates on first use.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// NewDequeWithCapacity creates a Deque with room for at least size items
// before it has to grow.
func NewDequeWithCapacity[T any](size int) *Deque[T] {
	q := &Deque[T]{}
	if size > 0 {
		q.d.Grow(size)
	}
	return q
}

// Enqueue adds an item to the back of the deque, growing it if full.
func (q *Deque[T]) Enqueue(v T) {
	q.d.PushBack(v)
}

// Dequeue removes and returns the front item.
// Returns false if the deque is empty.
func (q *Deque[T]) Dequeue() (T, bool) {
	if q.d.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.d.PopFront(), true
}

// IsEmpty reports whether the deque holds no items.
func (q *Deque[T]) IsEmpty() bool {
	return q.d.Len() == 0
}

// Len returns the current number of items in the deque.
func (q *Deque[T]) Len() int {
	return q.d.Len()
}

// Cap returns the number of items the deque can hold before growing.
func (q *Deque[T]) Cap() int {
	return q.d.Cap()
}
