// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in a per-tree arena and refer to each other by slot
// number.  Slot zero is the sentinel: its left link is the root, its
// right link caches the node with the highest key, every absent child
// link refers to it and it is the position returned by End().
//
// Heights: the sentinel (i.e. an absent child) has height zero and a
// leaf has height one.  The balance factor of a node is
// height(left) - height(right) and is within [-1, +1] whenever a
// public method returns.
//
// Keys are ordered by a strict weak order "less" function; two keys
// are equivalent when neither is less than the other.  Insert does
// not overwrite the value of an existing key; Set does and Ref returns
// a pointer through which it can be written.
//
// Every node also records the size of its sub-tree, which gives the
// in-order index queries Nth and Rank.
package avl
