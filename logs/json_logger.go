/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

const jsonTimestampField = "ctime"

// JSONLoggers write one JSON document per entry using zerolog.
// Documents are {"severity":..., "ctime":..., "source":..., "logger-source":..., "message":...}.
// Field names are set per entry so that the zerolog globals are left untouched.
type JSONLoggers struct {
	mu           sync.RWMutex
	source       string
	loggerSource string
	writer       WriterWithSource
	zerologger   zerolog.Logger
	ownsWriter   bool
}

func (l *JSONLoggers) SetLogSource(source string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	return l.writer.SetSource(source)
}

func (l *JSONLoggers) SetLoggerSource(source string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loggerSource = source
	return nil
}

func (l *JSONLoggers) GetSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *JSONLoggers) GetLoggerSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loggerSource
}

// Check returns an error unless both sources are set.
func (l *JSONLoggers) Check() error {
	switch {
	case l.GetSource() == "":
		return commonerrors.ErrNoLogSource
	case l.GetLoggerSource() == "":
		return commonerrors.ErrNoLoggerSource
	default:
		return nil
	}
}

func (l *JSONLoggers) Log(output ...interface{}) {
	l.write(zerolog.InfoLevel, output)
}

func (l *JSONLoggers) LogError(err ...interface{}) {
	l.write(zerolog.ErrorLevel, err)
}

// write skips blank line entries.
func (l *JSONLoggers) write(level zerolog.Level, entry []interface{}) {
	if len(entry) == 1 && entry[0] == "\n" {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.zerologger.Log().
		Str(KeySeverity, level.String()).
		Time(jsonTimestampField, time.Now()).
		Str(KeyLogSource, l.source).
		Str(KeyLoggerSource, l.loggerSource).
		Msg(fmt.Sprint(entry...))
}

// Close closes the writer if the loggers own it.
func (l *JSONLoggers) Close() error {
	if !l.ownsWriter {
		return nil
	}
	return l.writer.Close()
}

// NewJSONLogger creates JSON loggers which close `writer` when closed.
func NewJSONLogger(writer WriterWithSource, loggerSource string, source string) (Loggers, error) {
	return newJSONLogger(true, writer, loggerSource, source)
}

// NewJSONLoggerWithWriter is similar to NewJSONLogger but leaves `writer` open on Close().
func NewJSONLoggerWithWriter(writer WriterWithSource, loggerSource string, source string) (Loggers, error) {
	return newJSONLogger(false, writer, loggerSource, source)
}

func newJSONLogger(ownsWriter bool, writer WriterWithSource, loggerSource string, source string) (Loggers, error) {
	if writer == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing writer")
	}
	l := &JSONLoggers{
		source:       source,
		loggerSource: loggerSource,
		writer:       writer,
		ownsWriter:   ownsWriter,
		zerologger:   zerolog.New(writer),
	}
	if err := l.Check(); err != nil {
		return nil, err
	}
	if err := writer.SetSource(source); err != nil {
		return nil, err
	}
	return l, nil
}
