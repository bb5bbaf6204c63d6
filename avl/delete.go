// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Erase - remove the node at a position
//
// returns the position of the in-order successor.  When the node has
// two children the successor's key and value are moved into the
// node's slot and the successor's slot is freed, so the returned
// position is the same as it and any other iterator on the successor
// becomes invalid.
//
// erasing End() does nothing and returns End()
func (tree *Tree[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	if it.tree == tree && it.IsEnd() {
		return it
	}
	if it.tree != tree || !tree.live(it.at) {
		fault.PanicWithError("avl: erase", fault.ErrInvalidIterator)
	}
	next := tree.erase(it.at)
	tree.verify("erase")
	return Iterator[K, V]{tree: tree, at: next}
}

// EraseKey - remove the node with key, returns the number removed
func (tree *Tree[K, V]) EraseKey(key K) int {
	p := tree.find(key)
	if sentinel == p {
		return 0
	}
	tree.erase(p)
	tree.verify("erase key")
	return 1
}

// EraseRange - remove all nodes in [first, last), returns the
// position now holding last's key
//
// last is tracked by key since erasing a node with two children can
// move last's key into a different slot
func (tree *Tree[K, V]) EraseRange(first Iterator[K, V], last Iterator[K, V]) Iterator[K, V] {
	if first.tree != tree || last.tree != tree {
		fault.PanicWithError("avl: erase range", fault.ErrInvalidIterator)
	}
	if last.IsEnd() {
		for !first.IsEnd() {
			first = tree.Erase(first)
		}
		return first
	}
	lastKey := last.Key()
	for !first.IsEnd() && tree.less(first.Key(), lastKey) {
		first = tree.Erase(first)
	}
	return first
}

// internal: unlink p, rebalance and release the physically removed
// slot; returns the slot holding the successor's key
func (tree *Tree[K, V]) erase(p index) index {
	n := &tree.nodes[p]

	if sentinel != n.left && sentinel != n.right {
		// successor is the leftmost node of the right sub-tree so it
		// has no left child
		s := tree.minimum(n.right)
		n.key = tree.nodes[s].key
		n.value = tree.nodes[s].value

		parent := tree.nodes[s].up
		tree.replaceChild(parent, s, tree.nodes[s].right)
		tree.rebalance(parent)
		tree.freeNode(s)
		tree.count -= 1
		return p
	}

	next := tree.successor(p)

	child := n.left
	if sentinel == child {
		child = n.right
	}
	parent := n.up
	tree.replaceChild(parent, p, child)
	tree.rebalance(parent)
	tree.freeNode(p)
	tree.count -= 1
	return next
}
