// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dataset - named sets of integer keyed words held in AVL
// trees and the set operations between them
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// Set - a single dataset
type Set = avl.Tree[int, string]

// Collection - all datasets indexed by name
type Collection struct {
	sets *avl.Tree[string, *Set]
	log  *logger.L
}

// NewSet - create an empty dataset
func NewSet() *Set {
	return avl.NewOrdered[int, string]()
}

// New - create an empty collection logging to log
func New(log *logger.L) *Collection {
	if nil == log {
		fault.Panic("dataset: nil logger")
	}
	return &Collection{
		sets: avl.NewOrdered[string, *Set](),
		log:  log,
	}
}

// Len - number of datasets
func (c *Collection) Len() int {
	return c.sets.Len()
}

// Names - dataset names in ascending order
func (c *Collection) Names() []string {
	names := make([]string, 0, c.sets.Len())
	for name := range c.sets.Keys() {
		names = append(names, name)
	}
	return names
}

// Lookup - fetch a dataset by name
func (c *Collection) Lookup(name string) (*Set, error) {
	set, ok := c.sets.Get(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, fault.ErrDatasetNotFound)
	}
	return set, nil
}

// Add - store a dataset under name, replacing any previous one
func (c *Collection) Add(name string, set *Set) {
	if !c.sets.Set(name, set) {
		c.log.Warnf("replaced dataset: %q", name)
	}
}

// Load - read datasets, one per line as: name key value key value …
//
// keys are non-negative integers and values single words; blank lines
// are skipped and if a key repeats within a line the first value is
// kept.  Nothing is added unless every line is valid.
func (c *Collection) Load(r io.Reader) error {
	type loaded struct {
		name string
		set  *Set
	}
	var all []loaded

	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		line, err := readLine(reader)
		if io.EOF == err {
			break
		}
		if nil != err {
			return err
		}
		lineNumber += 1
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}
		set, err := parseSet(fields[1:])
		if nil != err {
			c.log.Errorf("line: %d  error: %s", lineNumber, err)
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		all = append(all, loaded{name: fields[0], set: set})
	}

	for _, item := range all {
		c.log.Debugf("dataset: %q  size: %d", item.name, item.set.Len())
		c.Add(item.name, item.set)
	}
	c.log.Infof("loaded: %d datasets", len(all))
	return nil
}

// next line without its terminator, there is no length limit
//
// returns io.EOF only when no data remains, so a final line without a
// newline is still delivered
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if nil != err && (io.EOF != err || "" == line) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// build a set from alternating key and value fields
func parseSet(fields []string) (*Set, error) {
	if 0 != len(fields)%2 {
		return nil, fmt.Errorf("key without value: %w", fault.ErrInvalidDataset)
	}
	set := NewSet()
	for i := 0; i < len(fields); i += 2 {
		key, err := parseKey(fields[i])
		if nil != err {
			return nil, err
		}
		set.Insert(key, fields[i+1])
	}
	return set, nil
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if nil != err || key < 0 {
		return 0, fmt.Errorf("key: %q: %w", s, fault.ErrInvalidKey)
	}
	return key, nil
}

// Print - write a dataset as: name key value key value …
//
// an empty dataset is written as <EMPTY>
func (c *Collection) Print(w io.Writer, name string) error {
	set, err := c.Lookup(name)
	if nil != err {
		return err
	}
	if set.IsEmpty() {
		_, err = fmt.Fprintln(w, emptyMessage)
		return err
	}
	b := strings.Builder{}
	b.WriteString(name)
	for k, v := range set.All() {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(k))
		b.WriteByte(' ')
		b.WriteString(v)
	}
	b.WriteByte('\n')
	_, err = io.WriteString(w, b.String())
	return err
}
