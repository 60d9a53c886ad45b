/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "io"

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-numeric/$GOPACKAGE Loggers,WriterWithSource

// Loggers log lines of output and errors. NewLogrLoggerFromLoggers turns them into a logr logger.
type Loggers interface {
	io.Closer
	// Check returns an error if the loggers cannot log.
	Check() error
	// SetLogSource records what entries relate to e.g. an operation or an expression.
	SetLogSource(source string) error
	// SetLoggerSource records what logs e.g. numeric, numcalc.
	SetLoggerSource(source string) error
	Log(output ...interface{})
	LogError(err ...interface{})
}

// WriterWithSource is a writer aware of the source of what is written.
type WriterWithSource interface {
	io.WriteCloser
	SetSource(source string) error
}
