// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import "reflect"

const (
	// staticDepth is the size of the static array to use for keeping track
	// of the path stack during splaying and iteration.  A splay tree only
	// has amortized logarithmic height, so a skewed access sequence can
	// exceed this size.  The overflow path handles that case and the
	// static array covers the common one without heap allocations.
	staticDepth = 128
)

// node represents a node in the splay tree.  The tree owns every node through
// exactly one left or right pointer, or the root pointer.  No parent pointer
// is kept since ancestry is recomputed from the search path when needed.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// newNode returns a new node from the given key and value.  The node is not
// initially linked to any others.
func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

// rotateRight promotes the left child of h and reattaches its right subtree
// as the new left subtree of h.  It returns the promoted node, which is the
// new root of the subtree.  h.left must not be nil.
func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	return x
}

// rotateLeft promotes the right child of h and reattaches its left subtree as
// the new right subtree of h.  It returns the promoted node, which is the new
// root of the subtree.  h.right must not be nil.
func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	return x
}

// pathStack represents a stack of items collected while walking down the tree.
// It consists of a static array for holding the items and a dynamic overflow
// slice.  The overflow is only hit when the walk is deeper than staticDepth,
// which a splay tree permits after a skewed access sequence.
type pathStack[T any] struct {
	index    int
	items    [staticDepth]T
	overflow []T
}

// Len returns the current number of items in the stack.
func (s *pathStack[T]) Len() int {
	return s.index
}

// At returns the item n number of items from the top of the stack, where 0 is
// the topmost item, without removing it.  The boolean is false if n exceeds
// the number of items on the stack.
func (s *pathStack[T]) At(n int) (T, bool) {
	index := s.index - n - 1
	if index < 0 {
		var zero T
		return zero, false
	}

	if index < staticDepth {
		return s.items[index], true
	}

	return s.overflow[index-staticDepth], true
}

// Pop removes the top item from the stack.  The boolean is false if the stack
// is empty.
func (s *pathStack[T]) Pop() (T, bool) {
	var zero T
	if s.index == 0 {
		return zero, false
	}

	s.index--
	if s.index < staticDepth {
		item := s.items[s.index]
		s.items[s.index] = zero
		return item, true
	}

	item := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = zero
	return item, true
}

// Push pushes the passed item onto the top of the stack.
func (s *pathStack[T]) Push(item T) {
	if s.index < staticDepth {
		s.items[s.index] = item
		s.index++
		return
	}

	// Unlike a treap, a splay tree can legitimately degrade into a path,
	// so the overflow grows with append rather than one item at a time.
	index := s.index - staticDepth
	if index < len(s.overflow) {
		s.overflow[index] = item
	} else {
		s.overflow = append(s.overflow, item)
	}
	s.index++
}

// Reset empties the stack while keeping any overflow capacity for reuse.
func (s *pathStack[T]) Reset() {
	for s.index > 0 {
		s.Pop()
	}
}

// nodeQueue is a FIFO queue of nodes used for breadth-first traversal.  The
// backing slice is reused as items are dequeued and compacted once the dead
// prefix dominates it.
type nodeQueue[K, V any] struct {
	head  int
	items []*node[K, V]
}

// Len returns the number of queued nodes.
func (q *nodeQueue[K, V]) Len() int {
	return len(q.items) - q.head
}

// Enqueue appends n to the back of the queue.
func (q *nodeQueue[K, V]) Enqueue(n *node[K, V]) {
	if q.head > 0 && q.head >= len(q.items)/2 {
		remaining := copy(q.items, q.items[q.head:])
		clear(q.items[remaining:])
		q.items = q.items[:remaining]
		q.head = 0
	}
	q.items = append(q.items, n)
}

// Dequeue removes and returns the node at the front of the queue or nil when
// the queue is empty.
func (q *nodeQueue[K, V]) Dequeue() *node[K, V] {
	if q.head == len(q.items) {
		return nil
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	return n
}

// isNilKey reports whether key holds a nil reference of a nillable kind.
// Ordered keys are never nil, so only trees built with NewFunc call it.
func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(&key).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
