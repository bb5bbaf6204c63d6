// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mathrand "math/rand"
	"sort"
	"testing"

	"github.com/bitmark-inc/avlmap/avl"
)

type stringTree = avl.Tree[string, string]

func newStringTree() *stringTree {
	return avl.NewOrdered[string, string]()
}

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"1720", "0506", "8382", "6774", "1042",
	}
	for i := 0; i < 40; i += 1 {
		addList = append(addList, "1042")
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func TestListLong(t *testing.T) {
	r := mathrand.New(mathrand.NewSource(2016))
	addList := make([]string, 0, 250)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, fmt.Sprintf("%04d", r.Intn(10000)))
	}
	doList(t, addList)
	doTraverse(t, addList)
	doGet(t, addList)
}

func checkTree(t *testing.T, tree *stringTree, stage string) {
	t.Helper()
	if !tree.CheckUp() {
		depth := tree.Print(io.Discard, true)
		t.Fatalf("%s: inconsistent up links, depth: %d", stage, depth)
	}
	if err := tree.CheckBalance(); nil != err {
		t.Logf("depth: %d", tree.Height())
		t.Fatalf("%s: %s", stage, err)
	}
}

func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := newStringTree()
		for _, key := range addList {
			tree.Insert(key, "data:"+key)
		}
		checkTree(t, tree, "add")

		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue
			}
			alreadyDeleted[key] = struct{}{}
			dv, err := tree.At(key)
			if nil != err {
				t.Fatalf("at: %q error: %s", key, err)
			}
			if ev := "data:" + key; dv != ev {
				t.Fatalf("value: %q  expected: %q", dv, ev)
			}
			if n := tree.EraseKey(key); 1 != n {
				t.Fatalf("erase: %q removed: %d", key, n)
			}
		}
		checkTree(t, tree, "delete")

		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue
			}
			alreadyDeleted[key] = struct{}{}
			if n := tree.EraseKey(key); 1 != n {
				t.Fatalf("erase: %q removed: %d", key, n)
			}
		}
		if !tree.IsEmpty() {
			depth := tree.Print(io.Discard, true)
			t.Fatalf("remaining nodes: %d  depth: %d", tree.Len(), depth)
		}
		if !tree.Begin().Equal(tree.End()) {
			t.Fatal("begin is not end for empty tree")
		}
	}
}

func sortedUnique(addList []string) []string {
	unique := make(map[string]struct{})
	for _, key := range addList {
		unique[key] = struct{}{}
	}
	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	return expected
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	tree := newStringTree()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}
	expected := sortedUnique(addList)

	p := tree.Begin()
	if p.IsEnd() {
		t.Fatalf("no first item")
	}

	n := 0
	for i := 0; !p.IsEnd(); i += 1 {
		if p.Key() != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p = tree.End().Prev()
	if p.IsEnd() {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; !p.IsEnd(); i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Len() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Len(), n)
	}

	// delete remainder through the returned positions
	for p = tree.Begin(); !p.IsEnd(); {
		p = tree.Erase(p)
	}
	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes: %d", tree.Len())
	}
	if 0 != tree.Len() {
		t.Fatalf("remaining count not zero: %d", tree.Len())
	}
}

// use indexing to fetch each item
func doGet(t *testing.T, addList []string) {

	tree := newStringTree()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}
	expected := sortedUnique(addList)

	if len(expected) != tree.Len() {
		t.Fatalf("expected: %d items, but tree count: %d", len(expected), tree.Len())
	}

	for index, key := range expected {
		p := tree.Nth(index)
		if p.IsEnd() {
			t.Fatalf("[%d] key: %q not in tree", index, key)
		}
		if p.Key() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, p.Key())
		}
		index1, ok := tree.Rank(key)
		if !ok {
			t.Fatalf("[%d]: rank: %q not found", index, key)
		}
		if index != index1 {
			t.Errorf("[%d]: rank: %q index: %d expected: %d", index, key, index1, index)
		}
	}
	if !tree.Nth(len(expected)).IsEnd() || !tree.Nth(-1).IsEnd() {
		t.Fatal("out of range index is not end")
	}

	// delete even elements
	for index, key := range expected {
		if 0 == index%2 {
			tree.EraseKey(key)
		}
	}
	checkTree(t, tree, "delete even")

	// check odd elements are all present
	for index, key := range expected {
		if 0 == index%2 {
			continue
		}
		index >>= 1 // 1,3,5, … → 0,1,2, …
		p := tree.Nth(index)
		if p.IsEnd() {
			t.Fatalf("[%d] key: %q not in tree", index, key)
		}
		if p.Key() != key {
			t.Fatalf("[%d]: expected: %q but found: %q", index, key, p.Key())
		}
	}
}

func makeKey() string {
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return fmt.Sprintf("%04d", n%10000)
}

func TestRandomTree(t *testing.T) {

	randomTree(t, 2200, 2000)
	randomTree(t, 3400, 2760)
	randomTree(t, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, 2100, 2000)
	}
}

func randomTree(t *testing.T, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := newStringTree()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key)
	}
	checkTree(t, tree, "insert")

	for _, key := range d {
		tree.EraseKey(key)
		if !tree.CheckUp() {
			t.Fatalf("inconsistent tree after erasing: %q", key)
		}
	}
	checkTree(t, tree, "erase")

	// add back the test value, keys are four digits so this is unique
	const testKey = "500"
	const testValue = "just testing data: test 500 value"
	if _, added := tree.Insert(testKey, testValue); !added {
		t.Fatalf("test key: %q was not added", testKey)
	}
	checkTree(t, tree, "reinsert")

	doTraverse(t, d)
	doGet(t, d)

	// check that test value is searchable
	tv := tree.Find(testKey)
	if tv.IsEnd() {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// the remaining random keys are all four digits, so "500" sorts
	// between "0499" and "5000" and has neighbours unless the tree is
	// nearly empty
	if tree.Len() > 2 {
		n := tv.Next()
		p := tv.Prev()
		if n.IsEnd() && p.IsEnd() {
			t.Fatal("could not find any neighbour")
		}
	}

	// erase the test value, and check it is no longer in the tree
	tree.Erase(tv)
	if tree.Contains(testKey) {
		t.Fatalf("test key not deleted and contains: %q", tree.Find(testKey).Value())
	}
	checkTree(t, tree, "final")
}

// check that only Set overwrites and that positions of untouched
// nodes are stable when the tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := newStringTree()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}
	checkTree(t, tree, "add")

	oKey := "05"
	oIndex := 4 // zero based index
	const newData = "new content for 05"

	// insert does not overwrite
	if it, added := tree.Insert(oKey, newData); added || "data:05" != it.Value() {
		t.Fatalf("insert overwrote: added: %v  value: %q", added, it.Value())
	}
	if added := tree.Set(oKey, newData); added {
		t.Fatal("set added a duplicate node")
	}
	checkTree(t, tree, "set")

	node1 := tree.Find(oKey)
	if index1, _ := tree.Rank(oKey); oIndex != index1 {
		t.Errorf("index1: %d  expected %d", index1, oIndex)
	}
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// delete a node so the oKey node moves
	dKey := "06"
	tree.EraseKey(dKey)

	// ensure node did not move
	node2 := tree.Find(oKey)
	if index2, _ := tree.Rank(oKey); oIndex != index2 {
		t.Errorf("index2: %d  expected %d", index2, oIndex)
	}
	if !node1.Equal(node2) {
		t.Fatal("node moved")
	}
	if newData != node1.Value() {
		t.Fatalf("stale position holds: %q", node1.Value())
	}
	checkTree(t, tree, "delete")
}

func TestGetDepthInTree(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := newStringTree()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if d := tree.Begin().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}
	if d := tree.Begin().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
	if d := tree.Root().Depth(); d != 0 {
		t.Fatalf("incorrect root depth: %d", d)
	}
	if d := tree.End().Depth(); d != -1 {
		t.Fatalf("incorrect end depth: %d", d)
	}
	if h := tree.Height(); 3 != h {
		t.Fatalf("incorrect height: %d", h)
	}
}
