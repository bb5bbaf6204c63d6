// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Find - position of key, End() if absent
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: tree, at: tree.find(key)}
}

// Count - number of nodes with a key equivalent to key, i.e. 0 or 1
func (tree *Tree[K, V]) Count(key K) int {
	if sentinel == tree.find(key) {
		return 0
	}
	return 1
}

// Contains - true if key is present
func (tree *Tree[K, V]) Contains(key K) bool {
	return sentinel != tree.find(key)
}

// Get - value for key and whether it was present
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	p := tree.find(key)
	return tree.nodes[p].value, sentinel != p
}

// At - value for key or ErrKeyNotFound
func (tree *Tree[K, V]) At(key K) (V, error) {
	p := tree.find(key)
	if sentinel == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return tree.nodes[p].value, nil
}

// LowerBound - first position whose key is not less than key
func (tree *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	best := sentinel
	for p := tree.root(); sentinel != p; {
		n := &tree.nodes[p]
		if tree.less(n.key, key) {
			p = n.right
		} else {
			best = p
			p = n.left
		}
	}
	return Iterator[K, V]{tree: tree, at: best}
}

// UpperBound - first position whose key is greater than key
func (tree *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	best := sentinel
	for p := tree.root(); sentinel != p; {
		n := &tree.nodes[p]
		if tree.less(key, n.key) {
			best = p
			p = n.left
		} else {
			p = n.right
		}
	}
	return Iterator[K, V]{tree: tree, at: best}
}

// EqualRange - the half-open range of positions with keys equivalent
// to key; both are the same position if key is absent
func (tree *Tree[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	return tree.LowerBound(key), tree.UpperBound(key)
}

// Nth - position of the node at in-order index i (zero based), End()
// if i is out of range
func (tree *Tree[K, V]) Nth(i int) Iterator[K, V] {
	if i < 0 || i >= tree.count {
		return tree.End()
	}
	p := tree.root()
	for sentinel != p {
		n := &tree.nodes[p]
		l := int(tree.nodes[n.left].size)
		switch {
		case i < l:
			p = n.left
		case i > l:
			i -= l + 1
			p = n.right
		default:
			return Iterator[K, V]{tree: tree, at: p}
		}
	}
	fault.Panicf("avl: size counts corrupt at index: %d", i)
	return tree.End()
}

// Rank - in-order index of key and whether it is present
//
// if absent, the index is where the key would be inserted
func (tree *Tree[K, V]) Rank(key K) (int, bool) {
	rank := 0
	for p := tree.root(); sentinel != p; {
		n := &tree.nodes[p]
		switch {
		case tree.less(key, n.key):
			p = n.left
		case tree.less(n.key, key):
			rank += int(tree.nodes[n.left].size) + 1
			p = n.right
		default:
			return rank + int(tree.nodes[n.left].size), true
		}
	}
	return rank, false
}

// internal: slot of key or the sentinel
func (tree *Tree[K, V]) find(key K) index {
	p := tree.root()
	for sentinel != p {
		n := &tree.nodes[p]
		switch {
		case tree.less(key, n.key):
			p = n.left
		case tree.less(n.key, key):
			p = n.right
		default:
			return p
		}
	}
	return sentinel
}
