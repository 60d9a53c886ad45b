/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/reflection"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu        sync.RWMutex
	logger    logr.Logger
	closeFunc func() error
}

func (l *logrLogger) get() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Close() error {
	if l.closeFunc == nil {
		return nil
	}
	return l.closeFunc()
}

func (l *logrLogger) Check() error {
	logger := l.get()
	// a logger without sink discards everything and is valid.
	if logger.GetSink() == nil || logger.Enabled() {
		return nil
	}
	return commonerrors.New(commonerrors.ErrCondition, "disabled logger")
}

func (l *logrLogger) SetLogSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if reflection.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.WithName(source)
	return nil
}

func (l *logrLogger) Log(output ...interface{}) {
	l.get().Info(strings.TrimSuffix(fmt.Sprintln(output...), "\n"))
}

func (l *logrLogger) LogError(err ...interface{}) {
	l.get().Error(nil, strings.TrimSuffix(fmt.Sprintln(err...), "\n"))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but calls closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{logger: logrImpl, closeFunc: closeFunc}
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}
	loggers = l
	return
}

// loggersSink formats logr entries the way funcr does and forwards them to Loggers.
type loggersSink struct {
	funcr.Formatter
	loggers Loggers
}

func (s *loggersSink) WithName(name string) logr.LogSink {
	c := *s
	c.Formatter.AddName(name)
	return &c
}

func (s *loggersSink) WithValues(keysAndValues ...any) logr.LogSink {
	c := *s
	c.Formatter.AddValues(keysAndValues)
	return &c
}

func (s *loggersSink) WithCallDepth(depth int) logr.LogSink {
	c := *s
	c.Formatter.AddCallDepth(depth)
	return &c
}

func (s *loggersSink) Info(level int, msg string, keysAndValues ...any) {
	s.loggers.Log(join(s.FormatInfo(level, msg, keysAndValues)))
}

func (s *loggersSink) Error(err error, msg string, keysAndValues ...any) {
	s.loggers.LogError(join(s.FormatError(err, msg, keysAndValues)))
}

func join(prefix, args string) string {
	if prefix == "" {
		return args
	}
	return fmt.Sprintf("%v: %v", prefix, args)
}

// NewLogrLoggerFromLoggers converts loggers into a logr.Logger. Informational entries are sent to Log and errors to LogError.
func NewLogrLoggerFromLoggers(loggers Loggers) logr.Logger {
	if loggers == nil {
		return logr.Discard()
	}
	return logr.New(&loggersSink{
		Formatter: funcr.NewFormatter(funcr.Options{Verbosity: LevelTrace.Verbosity()}),
		loggers:   loggers,
	})
}
