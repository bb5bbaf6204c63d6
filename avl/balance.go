// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// recompute height and size of p from its children
func (tree *Tree[K, V]) update(p index) {
	n := &tree.nodes[p]
	hl := tree.nodes[n.left].height
	hr := tree.nodes[n.right].height
	if hl > hr {
		n.height = hl + 1
	} else {
		n.height = hr + 1
	}
	n.size = tree.nodes[n.left].size + tree.nodes[n.right].size + 1
}

// height(left) - height(right)
func (tree *Tree[K, V]) balanceFactor(p index) int32 {
	n := &tree.nodes[p]
	return tree.nodes[n.left].height - tree.nodes[n.right].height
}

// make "with" take the place of "old" below parent
func (tree *Tree[K, V]) replaceChild(parent index, old index, with index) {
	switch {
	case sentinel == parent:
		tree.nodes[sentinel].left = with
	case old == tree.nodes[parent].left:
		tree.nodes[parent].left = with
	case old == tree.nodes[parent].right:
		tree.nodes[parent].right = with
	default:
		fault.Panicf("avl: node %d is not a child of %d", old, parent)
	}
	if sentinel != with {
		tree.nodes[with].up = parent
	}
}

// rotate x down to the left, returns the new sub-tree root
//
//      x             y
//     / \           / \
//    a   y   =>    x   c
//       / \       / \
//      b   c     a   b
func (tree *Tree[K, V]) rotateLeft(x index) index {
	y := tree.nodes[x].right
	b := tree.nodes[y].left

	tree.replaceChild(tree.nodes[x].up, x, y)

	tree.nodes[x].right = b
	if sentinel != b {
		tree.nodes[b].up = x
	}
	tree.nodes[y].left = x
	tree.nodes[x].up = y

	tree.update(x)
	tree.update(y)
	return y
}

// rotate x down to the right, returns the new sub-tree root
//
//        x         y
//       / \       / \
//      y   c =>  a   x
//     / \           / \
//    a   b         b   c
func (tree *Tree[K, V]) rotateRight(x index) index {
	y := tree.nodes[x].left
	b := tree.nodes[y].right

	tree.replaceChild(tree.nodes[x].up, x, y)

	tree.nodes[x].left = b
	if sentinel != b {
		tree.nodes[b].up = x
	}
	tree.nodes[y].right = x
	tree.nodes[x].up = y

	tree.update(x)
	tree.update(y)
	return y
}

// walk from p up to the root restoring heights, sizes and balance
//
// the path must be walked completely since every ancestor's size
// changes, then the cached maximum is refreshed
func (tree *Tree[K, V]) rebalance(p index) {
	for sentinel != p {
		tree.update(p)
		switch bf := tree.balanceFactor(p); {
		case bf > 1:
			if tree.balanceFactor(tree.nodes[p].left) < 0 {
				tree.rotateLeft(tree.nodes[p].left) // left-right case
			}
			p = tree.rotateRight(p)
		case bf < -1:
			if tree.balanceFactor(tree.nodes[p].right) > 0 {
				tree.rotateRight(tree.nodes[p].right) // right-left case
			}
			p = tree.rotateLeft(p)
		}
		p = tree.nodes[p].up
	}
	tree.nodes[sentinel].right = tree.maximum(tree.root())
}

// leftmost node of the sub-tree at p
func (tree *Tree[K, V]) minimum(p index) index {
	if sentinel == p {
		return sentinel
	}
	for sentinel != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// rightmost node of the sub-tree at p
func (tree *Tree[K, V]) maximum(p index) index {
	if sentinel == p {
		return sentinel
	}
	for sentinel != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}
