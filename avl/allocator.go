// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avlmap/fault"
)

// slot number of a node in the tree's arena
type index uint32

// the sentinel occupies slot zero
const sentinel index = 0

// a node in the tree
type node[K, V any] struct {
	left   index // left sub-tree
	right  index // right sub-tree
	up     index // points to parent node, or next free slot
	height int32 // 0 for the sentinel and for free slots
	size   int32 // number of nodes in this sub-tree
	key    K     // key part for ordering
	value  V     // value part for data storage
}

// allocate a new leaf node, reuses reclaimed slots if any are available
//
// the slot is fully initialised before the caller links it into the
// tree, so a failed allocation leaves the tree unchanged
func (tree *Tree[K, V]) newNode(key K, value V, up index) index {
	n := node[K, V]{
		left:   sentinel,
		right:  sentinel,
		up:     up,
		height: 1,
		size:   1,
		key:    key,
		value:  value,
	}
	if sentinel == tree.free {
		if len(tree.nodes) > math.MaxInt32 {
			fault.Panicf("avl: arena full at %d nodes", len(tree.nodes))
		}
		tree.nodes = append(tree.nodes, n)
		return index(len(tree.nodes) - 1)
	}
	p := tree.free
	if 0 != tree.nodes[p].height {
		fault.Panic("avl: free list corrupt")
	}
	tree.free = tree.nodes[p].up
	tree.nodes[p] = n
	tree.freeNodes -= 1
	return p
}

// reclaim a slot and keep it in the free list
//
// clearing the key and value drops any references they hold
func (tree *Tree[K, V]) freeNode(p index) {
	tree.nodes[p] = node[K, V]{
		up: tree.free, // use as free list pointer
	}
	tree.free = p
	tree.freeNodes += 1
}

// true if p refers to an allocated node of this tree
func (tree *Tree[K, V]) live(p index) bool {
	return sentinel != p && int(p) < len(tree.nodes) && 0 != tree.nodes[p].height
}
