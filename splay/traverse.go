// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

// None of the traversals below splay the tree, so they leave its shape as
// the last keyed operation left it.

// PreOrder returns the values of the tree with every node visited before its
// left and then its right subtree.
func (t *Tree[K, V]) PreOrder() []V {
	var values []V
	preOrder(t.root, func(n *node[K, V]) { values = append(values, n.value) })
	return values
}

func preOrder[K, V any](n *node[K, V], visit func(*node[K, V])) {
	if n == nil {
		return
	}
	visit(n)
	preOrder(n.left, visit)
	preOrder(n.right, visit)
}

// PostOrder returns the values of the tree with every node visited after its
// left and then its right subtree.
func (t *Tree[K, V]) PostOrder() []V {
	var values []V
	postOrder(t.root, func(n *node[K, V]) { values = append(values, n.value) })
	return values
}

func postOrder[K, V any](n *node[K, V], visit func(*node[K, V])) {
	if n == nil {
		return
	}
	postOrder(n.left, visit)
	postOrder(n.right, visit)
	visit(n)
}

// InOrder returns the values of the tree in ascending key order.
func (t *Tree[K, V]) InOrder() []V {
	var values []V
	t.ForEach(func(_ K, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Keys returns the keys of the tree in ascending order.
func (t *Tree[K, V]) Keys() []K {
	var keys []K
	t.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// LevelOrder returns the values of the tree breadth first.  Each level is
// emitted from left to right since the left child of a node is always queued
// before its right child.
func (t *Tree[K, V]) LevelOrder() []V {
	if t.root == nil {
		return nil
	}

	var values []V
	var queue nodeQueue[K, V]
	queue.Enqueue(t.root)
	for queue.Len() > 0 {
		n := queue.Dequeue()
		values = append(values, n.value)
		if n.left != nil {
			queue.Enqueue(n.left)
		}
		if n.right != nil {
			queue.Enqueue(n.right)
		}
	}
	return values
}

// ForEach invokes the passed function with every key/value pair in the tree
// in ascending order until it returns false.
func (t *Tree[K, V]) ForEach(fn func(k K, v V) bool) {
	// Add the root node and all children to the left of it to the list of
	// nodes to traverse and loop until they, and all of their child nodes,
	// have been traversed.
	var parents pathStack[*node[K, V]]
	for n := t.root; n != nil; n = n.left {
		parents.Push(n)
	}
	for {
		n, ok := parents.Pop()
		if !ok {
			return
		}
		if !fn(n.key, n.value) {
			return
		}

		// Extend the nodes to traverse by all children to the left of
		// the current node's right child.
		for n := n.right; n != nil; n = n.left {
			parents.Push(n)
		}
	}
}
