// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors may be
// wrapped with fmt.Errorf("…: %w", err) and still be classified by
// the IsErr… functions.
//
// The critical log and panic routines are for defects that must never
// happen, such as a corrupt tree structure.
package fault
