// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlmap/fault"
)

// DataDirectory - resolve the data directory setting relative to the
// directory holding the configuration file and create it if missing
//
// "." means the configuration file's own directory; empty and "~"
// are rejected
func DataDirectory(configurationDirectory string, setting string) (string, error) {
	switch setting {
	case "", "~":
		return "", fmt.Errorf("%q: %w", setting, fault.ErrInvalidDirectory)
	case ".":
		setting = configurationDirectory
	}
	directory := EnsureAbsolute(configurationDirectory, setting)

	if err := os.MkdirAll(directory, 0o700); nil != err {
		return "", err
	}
	if fileInfo, err := os.Stat(directory); nil != err {
		return "", err
	} else if !fileInfo.IsDir() {
		return "", fmt.Errorf("%q: %w", directory, fault.ErrInvalidDirectory)
	}
	return directory, nil
}

// EnsureAbsolute - if filePath is relative, place it below directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// PlainName - check that name is a bare file name without any
// directory part, as required for files placed in the data directory
func PlainName(name string) error {
	if "" == name || "." == name || ".." == name || filepath.Base(name) != name {
		return fmt.Errorf("%q: %w", name, fault.ErrInvalidPlainName)
	}
	return nil
}
