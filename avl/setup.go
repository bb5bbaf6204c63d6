// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

const initialCapacity = 16

// Tree - type to hold the node arena of a tree
//
// The zero value is not usable; create trees with New or NewOrdered.
type Tree[K, V any] struct {
	nodes     []node[K, V] // nodes[0] is the sentinel
	free      index        // head of the reclaimed slot list
	freeNodes int          // number of slots in the free list
	count     int
	less      func(a, b K) bool
}

// New - create an initially empty tree ordered by less
//
// less must be a strict weak order: irreflexive, transitive and with
// transitive equivalence
func New[K, V any](less func(a, b K) bool) *Tree[K, V] {
	tree := &Tree[K, V]{
		less: less,
	}
	tree.init(initialCapacity)
	return tree
}

// NewOrdered - create an initially empty tree using the natural
// ordering of K
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return New[K, V](cmp.Less[K])
}

// reset to just a self-looped sentinel
func (tree *Tree[K, V]) init(capacity int) {
	tree.nodes = make([]node[K, V], 1, capacity)
	tree.free = sentinel
	tree.freeNodes = 0
	tree.count = 0
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return sentinel == tree.root()
}

// Len - number of nodes currently in the tree
func (tree *Tree[K, V]) Len() int {
	return tree.count
}

// Height - height of the root node, zero for an empty tree
func (tree *Tree[K, V]) Height() int {
	return int(tree.nodes[tree.root()].height)
}

// Less - the ordering function of the tree
func (tree *Tree[K, V]) Less() func(a, b K) bool {
	return tree.less
}

// Clear - remove all nodes
//
// all iterators are invalidated
func (tree *Tree[K, V]) Clear() {
	clear(tree.nodes) // drop key and value references
	tree.nodes = tree.nodes[:1]
	tree.free = sentinel
	tree.freeNodes = 0
	tree.count = 0
}

// Clone - deep copy of the tree with the same shape
//
// keys and values are copied by assignment, so reference types are
// shared with the original.  Free slots are not carried over.
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	clone := &Tree[K, V]{
		less: tree.less,
	}
	clone.init(tree.count + 1)

	// explicit work list instead of recursion
	work := make([]cloneStep, 0, 2*tree.Height()+1)
	if r := tree.root(); sentinel != r {
		work = append(work, cloneStep{from: r, up: sentinel})
	}
	for len(work) > 0 {
		w := work[len(work)-1]
		work = work[:len(work)-1]

		from := &tree.nodes[w.from]
		p := index(len(clone.nodes))
		clone.nodes = append(clone.nodes, node[K, V]{
			left:   sentinel,
			right:  sentinel,
			up:     w.up,
			height: from.height,
			size:   from.size,
			key:    from.key,
			value:  from.value,
		})
		switch {
		case sentinel == w.up:
			clone.nodes[sentinel].left = p
		case w.left:
			clone.nodes[w.up].left = p
		default:
			clone.nodes[w.up].right = p
		}
		if sentinel != from.right {
			work = append(work, cloneStep{from: from.right, up: p})
		}
		if sentinel != from.left {
			work = append(work, cloneStep{from: from.left, up: p, left: true})
		}
	}
	clone.count = tree.count
	clone.nodes[sentinel].right = clone.maximum(clone.root())
	clone.verify("clone")
	return clone
}

// a source node waiting to be copied below its already copied parent
type cloneStep struct {
	from index
	up   index
	left bool
}

// Take - move all nodes to a new tree, leaving this tree empty
//
// iterators of this tree are invalidated
func (tree *Tree[K, V]) Take() *Tree[K, V] {
	moved := &Tree[K, V]{
		nodes:     tree.nodes,
		free:      tree.free,
		freeNodes: tree.freeNodes,
		count:     tree.count,
		less:      tree.less,
	}
	tree.init(initialCapacity)
	return moved
}

// Swap - exchange the contents and ordering of two trees
//
// iterators of both trees are invalidated
func (tree *Tree[K, V]) Swap(other *Tree[K, V]) {
	if tree == other {
		return
	}
	*tree, *other = *other, *tree
}

// the root node
func (tree *Tree[K, V]) root() index {
	return tree.nodes[sentinel].left
}
