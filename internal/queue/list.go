package queue

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// LinkedList wraps a doubly linked list as a Queue.
//
// Every Enqueue allocates a node, so this is the pointer-chasing baseline the
// slice-backed Deque is compared against. Both ends are O(1): items are added
// after the last node and removed at index 0. The list stores interface{}
// values, so each item is also boxed on the way in; that allocation is part of
// what this variant measures.
type LinkedList[T any] struct {
	list *doublylinkedlist.List
}

// NewLinkedList creates an empty LinkedList.
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{
		list: doublylinkedlist.New(),
	}
}

// Enqueue adds an item to the back of the list.
func (l *LinkedList[T]) Enqueue(v T) {
	l.list.Add(v)
}

// Dequeue removes and returns the front item.
// Returns false if the list is empty.
func (l *LinkedList[T]) Dequeue() (T, bool) {
	v, ok := l.list.Get(0)
	if !ok {
		var zero T
		return zero, false
	}
	l.list.Remove(0)
	return v.(T), true
}

// IsEmpty reports whether the list holds no items.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.list.Empty()
}

// Len returns the current number of items in the list.
func (l *LinkedList[T]) Len() int {
	return l.list.Size()
}
