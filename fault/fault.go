// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCorruptTree          = ProcessError("tree structure is corrupt")
	ErrDatasetNotFound      = NotFoundError("dataset not found")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidDataset       = InvalidError("invalid dataset")
	ErrInvalidDirectory     = InvalidError("path is not a valid directory")
	ErrInvalidIterator      = InvalidError("iterator does not reference an element")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidPlainName     = InvalidError("file is not a plain name")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundDatasetFile  = NotFoundError("dataset file is not found")
	ErrNotLuaTable          = InvalidError("configuration did not return a table")
	ErrUnbalancedTree       = ProcessError("tree is unbalanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
