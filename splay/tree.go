// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"cmp"
	"fmt"
	"strconv"
)

// Tree represents a splay tree which is used to hold ordered key/value pairs.
// It is a self-adjusting binary search tree: every keyed access rotates the
// accessed node, or the last node on its search path when the key is absent,
// up to the root.  Search, insert, and delete operations are all amortized
// O(log n), although a single operation can cost O(n).
//
// Since lookups restructure the tree, a Tree is not safe for concurrent access
// without external locking, even when every caller only reads.
type Tree[K, V any] struct {
	root    *node[K, V]
	compare func(a, b K) int

	// checkNil is set when the key type may hold nil references that the
	// comparison function cannot order.
	checkNil bool
}

// New returns a new empty splay tree ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// NewFunc returns a new empty splay tree ordered by the passed comparison
// function, which must return a negative number when a < b, a positive number
// when a > b, and zero when they are equal.  It must be a total order.
//
// Keyed operations on the returned tree panic with an Error with the ErrNilKey
// code when passed a nil pointer, interface, map, slice, func, or chan key.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic(splayError(ErrNilCompare, "NewFunc: nil comparison function"))
	}
	return &Tree[K, V]{compare: compare, checkNil: true}
}

// checkKey panics when the passed key cannot be ordered.  It is called before
// the tree is touched so a misuse never leaves a partially restructured tree.
func (t *Tree[K, V]) checkKey(op string, key K) {
	if t.checkNil && isNilKey(key) {
		str := fmt.Sprintf("%s: nil key", op)
		panic(splayError(ErrNilKey, str))
	}
}

// splayCase identifies which two-level rotation pattern a splay frame needs
// once the deeper part of the path has been splayed.
type splayCase uint8

const (
	// splayZig means the child is the final node on the path so only the
	// single rotation at this level is needed.
	splayZig splayCase = iota

	// splayZigZig means the key lies on the same side of the child as the
	// child lies of the frame node.
	splayZigZig

	// splayZigZag means the key lies on the opposite side of the child.
	splayZigZag
)

// splayFrame records one two-level step of the descent done by splay.
type splayFrame[K, V any] struct {
	h    *node[K, V]
	left bool
	kind splayCase
}

// splay restructures the subtree rooted at h so the node holding key becomes
// its root.  When the key does not exist, the last node on the search path,
// which is the in-order predecessor or successor of key, becomes the root
// instead.  It returns the new root of the subtree.
//
// The descent consumes two levels per step and records a frame for each of
// them.  The frames are then unwound from the deepest one, applying the
// zig-zig or zig-zag rotations bottom up.  An explicit stack is used rather
// than recursion since the depth is only bounded by the number of nodes.
func (t *Tree[K, V]) splay(h *node[K, V], key K) *node[K, V] {
	var frames pathStack[splayFrame[K, V]]
	var result *node[K, V]
	for h != nil {
		compareResult := t.compare(key, h.key)
		if compareResult == 0 {
			result = h
			break
		}

		frame := splayFrame[K, V]{h: h, left: compareResult < 0}
		child := h.right
		if frame.left {
			child = h.left
		}
		if child == nil {
			// The key does not exist, so this node ends the path.
			result = h
			break
		}

		var next *node[K, V]
		childResult := t.compare(key, child.key)
		switch {
		case childResult < 0 && frame.left:
			frame.kind, next = splayZigZig, child.left
		case childResult > 0 && !frame.left:
			frame.kind, next = splayZigZig, child.right
		case childResult > 0:
			frame.kind, next = splayZigZag, child.right
		case childResult < 0:
			frame.kind, next = splayZigZag, child.left
		}
		frames.Push(frame)
		if frame.kind == splayZig {
			break
		}
		h = next
	}

	for {
		frame, ok := frames.Pop()
		if !ok {
			break
		}

		h := frame.h
		if frame.left {
			switch frame.kind {
			case splayZigZig:
				h.left.left = result
				h = rotateRight(h)
			case splayZigZag:
				h.left.right = result
				if h.left.right != nil {
					h.left = rotateLeft(h.left)
				}
			}
			if h.left == nil {
				result = h
			} else {
				result = rotateRight(h)
			}
			continue
		}

		switch frame.kind {
		case splayZigZig:
			h.right.right = result
			h = rotateLeft(h)
		case splayZigZag:
			h.right.left = result
			if h.right.left != nil {
				h.right = rotateRight(h.right)
			}
		}
		if h.right == nil {
			result = h
		} else {
			result = rotateLeft(h)
		}
	}

	return result
}

// IsEmpty returns whether or not the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Get returns the value for the passed key and true when it exists, or the
// zero value and false otherwise.  A stored zero value is reported as found.
//
// NOTE: Get is not a pure query.  It splays the tree on key, so the key (or
// its nearest neighbor when absent) becomes the root.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	t.checkKey("Get", key)
	if t.root == nil {
		var zero V
		return zero, false
	}

	t.root = t.splay(t.root, key)
	if t.compare(key, t.root.key) != 0 {
		var zero V
		return zero, false
	}
	return t.root.value, true
}

// Contains returns whether or not the passed key exists.  Like Get, it splays
// the tree on key.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put inserts the passed key/value pair, overwriting the value in place when
// the key already exists.  The key becomes the root of the tree.
func (t *Tree[K, V]) Put(key K, value V) {
	t.checkKey("Put", key)

	// The node is the root of the tree if there isn't already one.
	if t.root == nil {
		t.root = newNode(key, value)
		log.Tracef("Created root node for key %v", key)
		return
	}

	t.root = t.splay(t.root, key)
	compareResult := t.compare(key, t.root.key)
	if compareResult == 0 {
		// The key already exists, so update its value.
		t.root.value = value
		log.Tracef("Replaced value for key %v", key)
		return
	}

	// The new node takes over the side of the old root that holds keys on
	// its own side, and adopts the old root as the other child.
	n := newNode(key, value)
	if compareResult < 0 {
		n.left = t.root.left
		n.right = t.root
		t.root.left = nil
	} else {
		n.right = t.root.right
		n.left = t.root
		t.root.right = nil
	}
	t.root = n
	log.Tracef("Inserted key %v, tree height %v", key,
		newLogClosure(func() string {
			return strconv.Itoa(t.Height())
		}))
}

// Remove removes the passed key if it exists.  When it does not, the tree is
// left splayed on its nearest neighbor.
func (t *Tree[K, V]) Remove(key K) {
	t.checkKey("Remove", key)
	if t.root == nil {
		return
	}

	t.root = t.splay(t.root, key)
	if t.compare(key, t.root.key) != 0 {
		log.Tracef("Remove of absent key %v", key)
		return
	}

	// Splaying the left subtree on the removed key brings its maximum to
	// the top, which leaves room for the right subtree on its right side.
	removed := t.root
	if removed.left == nil {
		t.root = removed.right
	} else {
		t.root = t.splay(removed.left, key)
		t.root.right = removed.right
	}
	removed.left, removed.right = nil, nil
	log.Tracef("Removed key %v", key)
}

// Min returns the smallest key in the tree along with its value and splays it
// to the root.  The boolean is false when the tree is empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}
	t.root = t.splay(t.root, n.key)
	return t.root.key, t.root.value, true
}

// Max returns the largest key in the tree along with its value and splays it
// to the root.  The boolean is false when the tree is empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}
	t.root = t.splay(t.root, n.key)
	return t.root.key, t.root.value, true
}

// Reset efficiently removes all items in the tree.
func (t *Tree[K, V]) Reset() {
	t.root = nil
}
