// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

// Height returns the number of edges on the longest path from the root to a
// leaf.  It is -1 for an empty tree and 0 for a tree with a single node.  The
// height is recomputed on every call.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}

// Size returns the number of items stored in the tree.  It walks the whole
// tree on every call.
func (t *Tree[K, V]) Size() int {
	return size(t.root)
}

func size[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + size(n.left) + size(n.right)
}

// IsBalanced returns whether the heights of the two subtrees of every node
// differ by at most one.  Splay trees do not maintain this property, so false
// is a legitimate result after a skewed access sequence.
func (t *Tree[K, V]) IsBalanced() bool {
	_, balanced := balancedHeight(t.root)
	return balanced
}

// balancedHeight returns the height of the subtree rooted at n and whether it
// is balanced.  The height is meaningless once the subtree is unbalanced.
func balancedHeight[K, V any](n *node[K, V]) (int, bool) {
	if n == nil {
		return -1, true
	}
	leftHeight, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}
	rightHeight, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}
	diff := leftHeight - rightHeight
	if diff < -1 || diff > 1 {
		return 0, false
	}
	return 1 + max(leftHeight, rightHeight), true
}

// Parent returns the key and value of the node whose child holds the passed
// key.  The boolean is false when the key does not exist or is held by the
// root.  Unlike Get, Parent does not splay the tree, so the relation it
// reports is the one left by the last keyed operation.
func (t *Tree[K, V]) Parent(key K) (K, V, bool) {
	t.checkKey("Parent", key)

	var parent *node[K, V]
	for n := t.root; n != nil; {
		compareResult := t.compare(key, n.key)
		if compareResult == 0 {
			if parent == nil {
				break
			}
			return parent.key, parent.value, true
		}

		parent = n
		if compareResult < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	var k K
	var v V
	return k, v, false
}
