// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package splay implements a splay tree data structure that is used to hold
ordered key/value pairs.  It is a self-adjusting binary search tree that
rotates every accessed key to the root, so recently touched keys are cheap to
reach again.  Search, insert, and delete operations are all amortized O(log n),
but a single operation may cost O(n) and no bound on the height is maintained.

Every keyed operation, including Get and Contains, changes the shape of the
tree.  The content is only changed by Put, Remove, and Reset.  Traversals,
ForEach, Parent, and iterators never change the shape.

A tree is not safe for concurrent access without careful use of locking by the
caller.  Since lookups restructure the tree, readers need exclusive access just
like writers.

Trees over keys with a natural ordering are created with New:

	t := splay.New[string, string]()
	t.Put("www.example.com", "93.184.216.34")
	addr, ok := t.Get("www.example.com")

Any other key type can be used by providing a comparison function to NewFunc.

# Errors

Lookups of keys that do not exist are reported through a boolean rather than an
error or a sentinel value, so a stored zero value is distinguishable from a
missing key.  Misuse of the API, such as passing a nil key to a tree created by
NewFunc, panics with an Error that identifies the problem through its
ErrorCode.
*/
package splay
