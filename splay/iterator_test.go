// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// keyPtr returns a pointer to a copy of the passed key for use as an iterator
// range bound.
func keyPtr(key uint32) *uint32 {
	return &key
}

// checkPosition ensures the iterator is positioned at want, or exhausted when
// want is nil.
func checkPosition(t *testing.T, desc string, iter *Iterator[uint32, uint32],
	valid bool, want *uint32) {

	t.Helper()

	if want == nil {
		if valid || iter.Valid() {
			t.Fatalf("%s: iterator should be exhausted - at %d", desc,
				iter.Key())
		}
		return
	}
	if !valid {
		t.Fatalf("%s: unexpected exhausted iterator", desc)
	}
	if gotKey := iter.Key(); gotKey != *want {
		t.Fatalf("%s: unexpected key - got %d, want %d", desc, gotKey,
			*want)
	}
	if gotVal := iter.Value(); gotVal != *want {
		t.Fatalf("%s: unexpected value - got %d, want %d", desc, gotVal,
			*want)
	}
}

// TestIterator ensures that the general behavior of iterators is as expected
// including tests for first, last, ordered and reverse ordered iteration,
// limiting the range, seeking, and initially unpositioned.
func TestIterator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		numKeys       int
		step          int
		startKey      *uint32
		limitKey      *uint32
		expectedFirst *uint32
		expectedLast  *uint32
		seekKey       uint32
		expectedSeek  *uint32
	}{
		{
			// No range limits.  Values are the set (0, 1, ..., 49).
			// Seek existing value.
			name:          "unlimited",
			numKeys:       50,
			step:          1,
			expectedFirst: keyPtr(0),
			expectedLast:  keyPtr(49),
			seekKey:       12,
			expectedSeek:  keyPtr(12),
		},
		{
			// Limited to range [24, end].  Values are the set
			// (0, 2, 4, ..., 48).  Seek value that doesn't exist and
			// is greater than largest existing key.
			name:          "start bound",
			numKeys:       50,
			step:          2,
			startKey:      keyPtr(24),
			expectedFirst: keyPtr(24),
			expectedLast:  keyPtr(48),
			seekKey:       49,
			expectedSeek:  nil,
		},
		{
			// Limited to range [start, 25).  Values are the set
			// (0, 3, 6, ..., 48).  Seek value that doesn't exist but
			// is before an existing value within the range.
			name:          "limit bound",
			numKeys:       50,
			step:          3,
			limitKey:      keyPtr(25),
			expectedFirst: keyPtr(0),
			expectedLast:  keyPtr(24),
			seekKey:       17,
			expectedSeek:  keyPtr(18),
		},
		{
			// Limited to range [10, 21).  Values are the set
			// (0, 4, ..., 48).  Seek value that exists, but is before
			// the minimum allowed range.
			name:          "both bounds",
			numKeys:       50,
			step:          4,
			startKey:      keyPtr(10),
			limitKey:      keyPtr(21),
			expectedFirst: keyPtr(12),
			expectedLast:  keyPtr(20),
			seekKey:       4,
			expectedSeek:  nil,
		},
		{
			// Limited to range [100, 101) out of (0, 1, ..., 299).
			name:          "single key range",
			numKeys:       300,
			step:          1,
			startKey:      keyPtr(100),
			limitKey:      keyPtr(101),
			expectedFirst: keyPtr(100),
			expectedLast:  keyPtr(100),
			seekKey:       100,
			expectedSeek:  keyPtr(100),
		},
		{
			// Range [60, 70) is beyond every key in the tree.
			name:     "range past the end",
			numKeys:  50,
			step:     1,
			startKey: keyPtr(60),
			limitKey: keyPtr(70),
			seekKey:  10,
		},
		{
			// Range [start, 0) excludes every key in the tree.
			name:     "limit before the start",
			numKeys:  50,
			step:     1,
			limitKey: keyPtr(0),
			seekKey:  0,
		},
	}

	for _, test := range tests {
		// Insert a bunch of keys.
		tree := New[uint32, uint32]()
		for i := 0; i < test.numKeys; i += test.step {
			tree.Put(uint32(i), uint32(i))
		}
		root := tree.root

		// Create new iterator limited by the test params.
		iter := tree.Iterator(test.startKey, test.limitKey)

		// Ensure the first item is accurate.
		checkPosition(t, test.name+" First", iter, iter.First(),
			test.expectedFirst)

		// Ensure the iterator gives the expected items in order.
		if test.expectedFirst != nil {
			curNum := *test.expectedFirst
			for iter.Next() {
				curNum += uint32(test.step)
				checkPosition(t, test.name+" Next", iter, true,
					&curNum)
			}
			if curNum != *test.expectedLast {
				t.Fatalf("%s: iteration stopped at %d, want %d",
					test.name, curNum, *test.expectedLast)
			}
		}
		require.False(t, iter.Valid(), test.name)

		// Ensure the last item is accurate.
		checkPosition(t, test.name+" Last", iter, iter.Last(),
			test.expectedLast)

		// Ensure the iterator gives the expected items in reverse
		// order.
		if test.expectedLast != nil {
			curNum := *test.expectedLast
			for iter.Prev() {
				curNum -= uint32(test.step)
				checkPosition(t, test.name+" Prev", iter, true,
					&curNum)
			}
			if curNum != *test.expectedFirst {
				t.Fatalf("%s: reverse iteration stopped at %d, "+
					"want %d", test.name, curNum,
					*test.expectedFirst)
			}
		}
		require.False(t, iter.Valid(), test.name)

		// Seek to the provided key.
		checkPosition(t, test.name+" Seek", iter,
			iter.Seek(test.seekKey), test.expectedSeek)

		// Recreate the iterator and ensure calling Next on it before it
		// has been positioned gives the first element.
		iter = tree.Iterator(test.startKey, test.limitKey)
		checkPosition(t, test.name+" unpositioned Next", iter,
			iter.Next(), test.expectedFirst)

		// Recreate the iterator and ensure calling Prev on it before it
		// has been positioned gives the last element.
		iter = tree.Iterator(test.startKey, test.limitKey)
		checkPosition(t, test.name+" unpositioned Prev", iter,
			iter.Prev(), test.expectedLast)

		// Iterating must never splay the tree.
		require.Same(t, root, tree.root, test.name)
	}
}

// TestEmptyIterator ensures that the various functions behave as expected
// when a tree is empty.
func TestEmptyIterator(t *testing.T) {
	t.Parallel()

	// Create iterator against empty tree.
	tree := New[uint32, uint32]()
	iter := tree.Iterator(nil, nil)

	// Ensure Valid on empty iterator reports it as exhausted.
	if iter.Valid() {
		t.Fatal("Valid: iterator should be exhausted")
	}

	// Ensure First and Last on empty iterator report it as exhausted.
	if iter.First() {
		t.Fatal("First: iterator should be exhausted")
	}
	if iter.Last() {
		t.Fatal("Last: iterator should be exhausted")
	}

	// Ensure Next and Prev on empty iterator report it as exhausted.
	if iter.Next() {
		t.Fatal("Next: iterator should be exhausted")
	}
	if iter.Prev() {
		t.Fatal("Prev: iterator should be exhausted")
	}

	// Ensure Key and Value on empty iterator are the zero values.
	if gotKey := iter.Key(); gotKey != 0 {
		t.Fatalf("Key: should be zero - got %d", gotKey)
	}
	if gotVal := iter.Value(); gotVal != 0 {
		t.Fatalf("Value: should be zero - got %d", gotVal)
	}

	// Ensure Next and Prev report exhausted after forcing a reseek on an
	// empty iterator.
	iter.ForceReseek()
	if iter.Next() {
		t.Fatal("Next: iterator should be exhausted")
	}
	iter.ForceReseek()
	if iter.Prev() {
		t.Fatal("Prev: iterator should be exhausted")
	}
}

// TestIteratorUpdates ensures that issuing a call to ForceReseek on an iterator
// that had the underlying tree updated or splayed works as expected.
func TestIteratorUpdates(t *testing.T) {
	t.Parallel()

	// Create a new tree with various values inserted in no particular
	// order.  The resulting keys are the set (2, 4, 7, 11, 18, 25).
	tree := New[uint32, uint32]()
	for _, key := range []uint32{7, 2, 18, 11, 25, 4} {
		tree.Put(key, key)
	}

	// Create an iterator against the tree with a range that excludes the
	// lowest and highest entries.  The limited set is then (4, 7, 11, 18)
	iter := tree.Iterator(keyPtr(3), keyPtr(25))

	// Remove a key from the middle of the range and notify the iterator
	// to force a reseek.
	tree.Remove(11)
	iter.ForceReseek()

	// Ensure that calling Next on the iterator after the forced reseek
	// gives the expected key.  The limited set of keys at this point is
	// (4, 7, 18) and the iterator has not yet been positioned.
	checkPosition(t, "ForceReseek.Next", iter, iter.Next(), keyPtr(4))

	// Remove the key the iterator is currently position at and notify the
	// iterator to force a reseek.
	tree.Remove(4)
	iter.ForceReseek()

	// The limited set of keys at this point is (7, 18) and the iterator is
	// positioned at a removed entry before 7.
	checkPosition(t, "ForceReseek.Next", iter, iter.Next(), keyPtr(7))

	// Add a key before the current key the iterator is position at and
	// notify the iterator to force a reseek.
	tree.Put(4, 4)
	iter.ForceReseek()

	// The limited set of keys at this point is (4, 7, 18) and the iterator
	// is positioned at 7.
	checkPosition(t, "ForceReseek.Prev", iter, iter.Prev(), keyPtr(4))

	// Remove the next key the iterator would ordinarily move to then
	// notify the iterator to force a reseek.
	tree.Remove(7)
	iter.ForceReseek()

	// The limited set of keys at this point is (4, 18) and the iterator is
	// positioned at 4.
	checkPosition(t, "ForceReseek.Next", iter, iter.Next(), keyPtr(18))

	// A lookup only changes the shape of the tree, but that still requires
	// a reseek before moving on.
	require.True(t, tree.Contains(2))
	iter.ForceReseek()
	checkPosition(t, "ForceReseek.Prev", iter, iter.Prev(), keyPtr(4))
}

// TestIteratorRemoveWhileIterating ensures the documented pattern of removing
// keys during iteration visits every key exactly once.
func TestIteratorRemoveWhileIterating(t *testing.T) {
	t.Parallel()

	tree := New[uint32, uint32]()
	for i := uint32(0); i < 100; i++ {
		tree.Put(i, i)
	}

	var visited []uint32
	iter := tree.Iterator(nil, nil)
	for iter.Next() {
		visited = append(visited, iter.Key())
		if iter.Key()%2 == 0 {
			tree.Remove(iter.Key())
			iter.ForceReseek()
		}
	}

	require.Len(t, visited, 100)
	for i, key := range visited {
		require.Equal(t, uint32(i), key)
	}
	require.Equal(t, 50, tree.Size())
	for _, key := range tree.Keys() {
		require.Equal(t, uint32(1), key%2)
	}
}
