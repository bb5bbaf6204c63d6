// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/bitmark-inc/avlmap/dataset"
	"github.com/bitmark-inc/avlmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--version] [--config-file=FILE] dataset-file < commands", program)
	}

	if 1 != len(arguments) {
		exitwithstatus.Message("%s: exactly one dataset file is required, %d were given", program, len(arguments))
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
		theConfiguration.Logging.Levels = map[string]string{
			logger.DefaultTag: "critical",
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	datasetFile := arguments[0]
	file, err := os.Open(datasetFile)
	if nil != err {
		log.Criticalf("open: %q  error: %s", datasetFile, err)
		exitwithstatus.Message("%s: %s: %q", program, fault.ErrNotFoundDatasetFile, datasetFile)
	}
	defer file.Close()

	collection := dataset.New(logger.New("dataset"))
	if err := collection.Load(file); nil != err {
		log.Criticalf("load: %q  error: %s", datasetFile, err)
		exitwithstatus.Message("%s: dataset file: %q  error: %s", program, datasetFile, err)
	}

	out := bufio.NewWriter(os.Stdout)
	start := time.Now()
	stats, err := collection.Process(os.Stdin, out)
	if flushErr := out.Flush(); nil == err {
		err = flushErr
	}
	if nil != err {
		log.Criticalf("process error: %s", err)
		exitwithstatus.Message("%s: process error: %s", program, err)
	}

	log.Info(summary(collection.Len(), stats, time.Since(start)))
}

// one line account of a run for the log
func summary(datasets int, stats dataset.Statistics, elapsed time.Duration) string {
	return fmt.Sprintf("datasets: %s  commands: %s  invalid: %s  created: %s  elapsed: %s",
		humanize.Comma(int64(datasets)),
		humanize.Comma(int64(stats.Commands)),
		humanize.Comma(int64(stats.Invalid)),
		humanize.Comma(int64(stats.Created)),
		elapsed,
	)
}
