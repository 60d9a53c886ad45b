/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs defines the loggers used by the numeric engine and its tools.
// Diagnostics are emitted through logr; Loggers is the line oriented abstraction some backends are built on.
package logs

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// GenericLoggers write output and errors to two standard library loggers.
type GenericLoggers struct {
	Output *log.Logger
	Error  *log.Logger
}

func newGenericLoggers(output, errOutput io.Writer, loggerSource string) GenericLoggers {
	return GenericLoggers{
		Output: log.New(output, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:  log.New(errOutput, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
	}
}

func (l *GenericLoggers) Check() error {
	switch {
	case l.Output == nil:
		return commonerrors.New(commonerrors.ErrNoLogger, "no output logger")
	case l.Error == nil:
		return commonerrors.New(commonerrors.ErrNoLogger, "no error logger")
	default:
		return nil
	}
}

// SetLogSource does nothing: sources are part of the prefix of the underlying loggers.
func (l *GenericLoggers) SetLogSource(_ string) error {
	return nil
}

func (l *GenericLoggers) SetLoggerSource(_ string) error {
	return nil
}

func (l *GenericLoggers) Log(output ...interface{}) {
	printEntry(l.Output, output)
}

func (l *GenericLoggers) LogError(err ...interface{}) {
	printEntry(l.Error, err)
}

func (l *GenericLoggers) Close() error {
	return nil
}

func printEntry(logger *log.Logger, entry []interface{}) {
	if logger == nil {
		return
	}
	logger.Println(entry...)
}

// StdWriter writes to a standard stream, standard output unless Stream is set. Closing it leaves the stream open.
type StdWriter struct {
	Stream *os.File
}

func (w *StdWriter) Write(p []byte) (n int, err error) {
	if w.Stream == nil {
		return os.Stdout.Write(p)
	}
	return w.Stream.Write(p)
}

func (w *StdWriter) Close() error {
	return nil
}

func (w *StdWriter) SetSource(_ string) error {
	return nil
}

// NewStdLogger creates loggers writing output to standard output and errors to standard error.
func NewStdLogger(loggerSource string) (loggers Loggers, err error) {
	generic := newGenericLoggers(&StdWriter{}, &StdWriter{Stream: os.Stderr}, loggerSource)
	loggers = &generic
	return
}

// StringLoggers keep all entries in memory. Mostly useful in tests.
type StringLoggers struct {
	GenericLoggers
	mu      sync.Mutex
	content strings.Builder
}

func (l *StringLoggers) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.content.Write(p)
}

// GetLogContent returns everything logged since the loggers were created or last closed.
func (l *StringLoggers) GetLogContent() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.content.String()
}

// Close discards the content.
func (l *StringLoggers) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.content.Reset()
	return nil
}

// NewStringLogger creates loggers writing to an in-memory buffer.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	loggers = &StringLoggers{}
	loggers.GenericLoggers = newGenericLoggers(loggers, loggers, loggerSource)
	return
}
