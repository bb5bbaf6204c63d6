// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
)

// Iterator - a position in a tree
//
// the End() position is the sentinel; stepping forward from the last
// node reaches it and stepping back from it gives the last node.
// Positions remain valid across mutations except for the node that
// was physically removed by an erase.
type Iterator[K, V any] struct {
	tree *Tree[K, V]
	at   index
}

// Begin - position of the lowest key, End() for an empty tree
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{tree: tree, at: tree.minimum(tree.root())}
}

// End - the position after the highest key
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: tree, at: sentinel}
}

// Root - position of the root node, End() for an empty tree
func (tree *Tree[K, V]) Root() Iterator[K, V] {
	return Iterator[K, V]{tree: tree, at: tree.root()}
}

// Next - the position with the next highest key
//
// Next of End() is End()
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.mustStep("next")
	it.at = it.tree.successor(it.at)
	return it
}

// Prev - the position with the next lowest key
//
// Prev of End() is the highest key and Prev of Begin() is End()
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	it.mustStep("prev")
	it.at = it.tree.predecessor(it.at)
	return it
}

// IsEnd - true at the End() position
func (it Iterator[K, V]) IsEnd() bool {
	return sentinel == it.at
}

// Equal - true if both refer to the same position of the same tree
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.tree == other.tree && it.at == other.at
}

// Key - the key at this position
func (it Iterator[K, V]) Key() K {
	return it.node().key
}

// Value - the value at this position
func (it Iterator[K, V]) Value() V {
	return it.node().value
}

// SetValue - overwrite the value at this position
func (it Iterator[K, V]) SetValue(value V) {
	it.node().value = value
}

// Depth - number of links from the root to this position, -1 for End()
func (it Iterator[K, V]) Depth() int {
	if sentinel == it.at {
		return -1
	}
	d := 0
	for p := it.node().up; sentinel != p; p = it.tree.nodes[p].up {
		d += 1
	}
	return d
}

// a freed or out of range slot has no links to follow
func (it Iterator[K, V]) mustStep(operation string) {
	if sentinel != it.at && !it.tree.live(it.at) {
		fault.PanicWithError("avl: "+operation, fault.ErrInvalidIterator)
	}
}

func (it Iterator[K, V]) node() *node[K, V] {
	if !it.tree.live(it.at) {
		fault.PanicWithError("avl: dereference", fault.ErrInvalidIterator)
	}
	return &it.tree.nodes[it.at]
}

// All - ascending sequence of all key/value pairs
//
// the tree must not be modified during the iteration
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.minimum(tree.root()); sentinel != p; p = tree.successor(p) {
			if !yield(tree.nodes[p].key, tree.nodes[p].value) {
				return
			}
		}
	}
}

// Backward - descending sequence of all key/value pairs
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.nodes[sentinel].right; sentinel != p; p = tree.predecessor(p) {
			if !yield(tree.nodes[p].key, tree.nodes[p].value) {
				return
			}
		}
	}
}

// Keys - ascending sequence of all keys
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// in-order next: leftmost of the right sub-tree, otherwise climb
// while p is a right child
func (tree *Tree[K, V]) successor(p index) index {
	if sentinel == p {
		return sentinel
	}
	if r := tree.nodes[p].right; sentinel != r {
		return tree.minimum(r)
	}
	up := tree.nodes[p].up
	for sentinel != up && p == tree.nodes[up].right {
		p, up = up, tree.nodes[up].up
	}
	return up
}

// in-order previous, the mirror of successor
func (tree *Tree[K, V]) predecessor(p index) index {
	if sentinel == p {
		return tree.nodes[sentinel].right
	}
	if l := tree.nodes[p].left; sentinel != l {
		return tree.maximum(l)
	}
	up := tree.nodes[p].up
	for sentinel != up && p == tree.nodes[up].left {
		p, up = up, tree.nodes[up].up
	}
	return up
}
