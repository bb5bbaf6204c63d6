// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dataset

import (
	"github.com/bitmark-inc/avlmap/avl"
)

// the set operations walk both trees in the first tree's key order so
// each runs in time proportional to the sum of the sizes

// Complement - create newName holding the entries of first whose keys
// are not in second
func (c *Collection) Complement(newName string, first string, second string) error {
	return c.combine(newName, first, second, complement)
}

// Intersect - create newName holding the entries of first whose keys
// are also in second
func (c *Collection) Intersect(newName string, first string, second string) error {
	return c.combine(newName, first, second, intersect)
}

// Union - create newName holding all entries of first and those
// entries of second whose keys are not in first
func (c *Collection) Union(newName string, first string, second string) error {
	return c.combine(newName, first, second, union)
}

func (c *Collection) combine(newName string, first string, second string, operation func(a *Set, b *Set) *Set) error {
	a, err := c.Lookup(first)
	if nil != err {
		return err
	}
	b, err := c.Lookup(second)
	if nil != err {
		return err
	}
	result := operation(a, b)
	c.log.Debugf("%q = %q, %q  size: %d", newName, first, second, result.Len())
	c.Add(newName, result)
	return nil
}

func complement(a *Set, b *Set) *Set {
	less := a.Less()
	result := avl.New[int, string](less)
	ib := b.Begin()
	for ia := a.Begin(); !ia.IsEnd(); ia = ia.Next() {
		for !ib.IsEnd() && less(ib.Key(), ia.Key()) {
			ib = ib.Next()
		}
		if ib.IsEnd() || less(ia.Key(), ib.Key()) {
			result.Push(ia.Key(), ia.Value())
		}
	}
	return result
}

func intersect(a *Set, b *Set) *Set {
	less := a.Less()
	result := avl.New[int, string](less)
	ia := a.Begin()
	ib := b.Begin()
	for !ia.IsEnd() && !ib.IsEnd() {
		switch ka, kb := ia.Key(), ib.Key(); {
		case less(ka, kb):
			ia = ia.Next()
		case less(kb, ka):
			ib = ib.Next()
		default:
			result.Push(ka, ia.Value())
			ia = ia.Next()
			ib = ib.Next()
		}
	}
	return result
}

func union(a *Set, b *Set) *Set {
	result := a.Clone()
	for k, v := range b.All() {
		result.Push(k, v) // existing keys of a are kept
	}
	return result
}
