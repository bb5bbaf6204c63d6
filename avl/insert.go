// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Insert - insert a new node into the tree
//
// if an equivalent key is already present its value is left
// untouched; returns the position of the key and whether a node was
// added
func (tree *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	p, added := tree.insert(key, value)
	if added {
		tree.verify("insert")
	}
	return Iterator[K, V]{tree: tree, at: p}, added
}

// Push - insert discarding the position
func (tree *Tree[K, V]) Push(key K, value V) bool {
	_, added := tree.insert(key, value)
	if added {
		tree.verify("push")
	}
	return added
}

// InsertAll - insert every pair of a sequence, returns the number of
// nodes added
func (tree *Tree[K, V]) InsertAll(seq iter.Seq2[K, V]) int {
	n := 0
	for k, v := range seq {
		if _, added := tree.insert(k, v); added {
			n += 1
		}
	}
	if n > 0 {
		tree.verify("insert all")
	}
	return n
}

// Ref - pointer to the value stored for key, inserting the zero value
// first if the key is absent
//
// the pointer is only valid until the next insertion or erasure as
// the node arena may be reallocated
func (tree *Tree[K, V]) Ref(key K) *V {
	var zero V
	p, added := tree.insert(key, zero)
	if added {
		tree.verify("ref")
	}
	return &tree.nodes[p].value
}

// Set - store value at key, overwriting any existing value
//
// returns true if a new node was added
func (tree *Tree[K, V]) Set(key K, value V) bool {
	p, added := tree.insert(key, value)
	if added {
		tree.verify("set")
	} else {
		tree.nodes[p].value = value
	}
	return added
}

// internal routine for insert
//
// descend to an empty link recording only the parent, the parent
// links provide the path back up for rebalancing
func (tree *Tree[K, V]) insert(key K, value V) (index, bool) {
	parent := sentinel
	p := tree.root()
	goLeft := true
	for sentinel != p {
		n := &tree.nodes[p]
		switch {
		case tree.less(key, n.key):
			parent, p, goLeft = p, n.left, true
		case tree.less(n.key, key):
			parent, p, goLeft = p, n.right, false
		default:
			return p, false
		}
	}

	p = tree.newNode(key, value, parent)
	switch {
	case sentinel == parent:
		tree.nodes[sentinel].left = p
	case goLeft:
		tree.nodes[parent].left = p
	default:
		tree.nodes[parent].right = p
	}
	tree.count += 1
	tree.rebalance(parent)
	return p, true
}
