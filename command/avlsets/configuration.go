// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlsets.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"dataset":         "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings for the program
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// with no file name the defaults apply and the data directory is
// placed in the system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels), // mapping writes into this map
		},
	}

	configurationDirectory := filepath.Join(os.TempDir(), "avlsets")

	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if fileInfo, err := os.Stat(fileName); nil != err || !fileInfo.Mode().IsRegular() {
			return nil, fmt.Errorf("%q: %w", fileName, fault.ErrNotFoundConfigFile)
		}

		// absolute path to the main directory
		configurationDirectory, _ = filepath.Split(fileName)

		variables := map[string]string{
			"config_directory": configurationDirectory,
		}
		if err := configuration.ParseConfigurationFile(fileName, options, variables); nil != err {
			return nil, err
		}
	}

	dataDirectory, err := configuration.DataDirectory(configurationDirectory, options.DataDirectory)
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	// force log directory to be absolute and within the data directory
	options.Logging.Directory = configuration.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}
	if err := configuration.PlainName(options.Logging.File); nil != err {
		return nil, err
	}

	return options, nil
}
