// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// logger.Initialise must have been called first
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string
func Critical(message string) {
	if _, file, line, ok := runtime.Caller(1); ok {
		internalCriticalf("(%q:%d) %s", file, line, message)
	} else {
		internalCriticalf("%s", message)
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(callerPrefix(format), callerArguments(arguments)...)
}

// Panicf - panic with a formatted message, after logging it
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	internalCriticalf(callerPrefix("%s"), callerArguments([]interface{}{message})...)
	Panic("abort: " + message)
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// PanicWithError - final panic including the error that caused it
func PanicWithError(message string, err error) {
	Panic(fmt.Sprintf("%s failed with error: %v", message, err))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// prefix a format with the caller's file and line, if available
// the caller is two frames up: the exported routine and its caller
func callerPrefix(format string) string {
	if _, _, _, ok := runtime.Caller(2); ok {
		return "(%q:%d) " + format
	}
	return format
}

func callerArguments(arguments []interface{}) []interface{} {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	return append(a, arguments...)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
