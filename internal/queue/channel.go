package queue

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach. Each Enqueue/Dequeue performs
// a channel operation, paying for the channel lock even though only one
// goroutine ever touches the queue. The buffer cannot grow, so it must be
// sized for the whole workload up front.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the queue.
// Panics if the buffer is full, since blocking would deadlock the
// single goroutine that also drains the queue.
func (q *ChannelQueue[T]) Enqueue(v T) {
	select {
	case q.ch <- v:
	default:
		panic("queue: Enqueue on full ChannelQueue - buffer must be sized for the workload")
	}
}

// Dequeue removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) Dequeue() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// IsEmpty reports whether the queue holds no items.
func (q *ChannelQueue[T]) IsEmpty() bool {
	return len(q.ch) == 0
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
