// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return nil == tree.check(false)
}

// CheckBalance - check every structural property of the tree
//
// verifies parent links, stored heights and sizes, the balance
// factor of every node, strict key order, the node count and the
// cached maximum
func (tree *Tree[K, V]) CheckBalance() error {
	return tree.check(true)
}

// internal: consistency checker
func (tree *Tree[K, V]) check(full bool) error {
	s := &tree.nodes[sentinel]
	if 0 != s.height || 0 != s.size || sentinel != s.up {
		return fmt.Errorf("%w: sentinel modified", fault.ErrCorruptTree)
	}

	r := tree.root()
	if sentinel != r && sentinel != tree.nodes[r].up {
		return fmt.Errorf("%w: root: %d has up: %d", fault.ErrCorruptTree, r, tree.nodes[r].up)
	}

	visited := 0
	stack := make([]index, 0, 2*tree.Height()+1)
	if sentinel != r {
		stack = append(stack, r)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visited += 1
		if visited > len(tree.nodes) {
			return fmt.Errorf("%w: cycle detected", fault.ErrCorruptTree)
		}
		if !tree.live(p) {
			return fmt.Errorf("%w: free slot: %d linked into tree", fault.ErrCorruptTree, p)
		}

		n := &tree.nodes[p]
		for _, c := range []index{n.left, n.right} {
			if sentinel == c {
				continue
			}
			if p != tree.nodes[c].up {
				return fmt.Errorf("%w: node: %d  actual up: %d  expected: %d", fault.ErrCorruptTree, c, tree.nodes[c].up, p)
			}
			stack = append(stack, c)
		}

		if !full {
			continue
		}

		hl := tree.nodes[n.left].height
		hr := tree.nodes[n.right].height
		if n.height != 1+max(hl, hr) {
			return fmt.Errorf("%w: node: %d  height: %d  children: %d/%d", fault.ErrCorruptTree, p, n.height, hl, hr)
		}
		if n.size != 1+tree.nodes[n.left].size+tree.nodes[n.right].size {
			return fmt.Errorf("%w: node: %d  wrong size: %d", fault.ErrCorruptTree, p, n.size)
		}
		if bf := hl - hr; bf < -1 || bf > 1 {
			return fmt.Errorf("%w: node: %d  balance factor: %+d", fault.ErrUnbalancedTree, p, bf)
		}
	}

	if !full {
		return nil
	}

	if visited != tree.count || int(tree.nodes[r].size) != tree.count {
		return fmt.Errorf("%w: count: %d  reachable: %d", fault.ErrCorruptTree, tree.count, visited)
	}
	if visited+tree.freeNodes+1 != len(tree.nodes) {
		return fmt.Errorf("%w: slots: %d  live: %d  free: %d", fault.ErrCorruptTree, len(tree.nodes), visited, tree.freeNodes)
	}
	if m := tree.maximum(r); m != s.right {
		return fmt.Errorf("%w: cached maximum: %d  actual: %d", fault.ErrCorruptTree, s.right, m)
	}

	steps := 0
	previous := sentinel
	for p := tree.minimum(r); sentinel != p; p = tree.successor(p) {
		if sentinel != previous && !tree.less(tree.nodes[previous].key, tree.nodes[p].key) {
			return fmt.Errorf("%w: keys out of order at node: %d", fault.ErrCorruptTree, p)
		}
		previous = p
		steps += 1
	}
	if steps != tree.count {
		return fmt.Errorf("%w: iterated: %d  count: %d", fault.ErrCorruptTree, steps, tree.count)
	}
	return nil
}

// run the full check after a mutation in builds with the avldebug tag
func (tree *Tree[K, V]) verify(operation string) {
	if !checkInvariants {
		return
	}
	if err := tree.CheckBalance(); nil != err {
		fault.Panicf("avl: after %s: %s", operation, err)
	}
}
