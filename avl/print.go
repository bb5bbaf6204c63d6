// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strconv"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
// rotated a quarter turn anticlockwise, returns the maximum depth
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return tree.printTree(w, tree.root(), "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree[K, V]) printTree(w io.Writer, p index, prefix string, br branch, printData bool) int {
	if sentinel == p {
		return 0
	}
	n := &tree.nodes[p]
	rd := 0
	ld := 0
	if sentinel != n.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = tree.printTree(w, n.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "<nil>"
	if sentinel != n.up {
		up = printable(tree.nodes[n.up].key)
	}
	if printData {
		fmt.Fprintf(w, "%s → %s ^%s %+2d/h:%d/n:%d\n", printable(n.key), printable(n.value), up, tree.balanceFactor(p), n.height, n.size)
	} else {
		fmt.Fprintf(w, "%s ^%s\n", printable(n.key), up)
	}
	if sentinel != n.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = tree.printTree(w, n.left, prefix+t, leftBranch, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// strings are quoted so that embedded spaces remain visible
func printable(item interface{}) string {
	switch s := item.(type) {
	case string:
		return strconv.Quote(s)
	case fmt.Stringer:
		return strconv.Quote(s.String())
	default:
		return fmt.Sprint(item)
	}
}
