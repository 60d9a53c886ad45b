/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

const (
	sourceDisplaySize = 30
	collapseSymbol    = "…"
	nullMessage       = "null text supplied to logger"
	timestampLayout   = "2006-01-02T15:04:05.000000"
	sourceSeparators  = "./"
)

type levelledSink struct {
	mu        *sync.Mutex
	writer    io.Writer
	threshold LogLevel
	source    string
	values    []any
	now       func() time.Time
}

func (s *levelledSink) Init(_ logr.RuntimeInfo) {
	// nothing to initialise.
}

func (s *levelledSink) Enabled(v int) bool {
	if v <= 0 {
		// a WARN entry is only distinguishable from INFO once its key/values are known.
		return s.threshold.Allows(LevelWarn)
	}
	return s.threshold.Allows(LevelFromVerbosity(v))
}

func (s *levelledSink) Info(v int, msg string, keysAndValues ...any) {
	level := levelOfInfo(v, keysAndValues)
	if !s.threshold.Allows(level) {
		return
	}
	s.write(level, msg, nil, keysAndValues)
}

func (s *levelledSink) Error(err error, msg string, keysAndValues ...any) {
	if !s.threshold.Allows(LevelError) {
		return
	}
	s.write(LevelError, msg, err, keysAndValues)
}

func (s *levelledSink) WithValues(keysAndValues ...any) logr.LogSink {
	c := *s
	c.values = append(c.values[:len(c.values):len(c.values)], keysAndValues...)
	return &c
}

func (s *levelledSink) WithName(name string) logr.LogSink {
	c := *s
	if c.source == "" {
		c.source = name
	} else {
		c.source = fmt.Sprintf("%v.%v", c.source, name)
	}
	return &c
}

func (s *levelledSink) write(level LogLevel, msg string, err error, keysAndValues []any) {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "[%5.5s][%v][%30.30s] - ", level.String(), s.now().Format(timestampLayout), collapseSource(s.source))
	if msg == "" {
		b.WriteString(nullMessage)
	} else {
		b.WriteString(msg)
	}
	writeKeysAndValues(&b, s.values)
	writeKeysAndValues(&b, keysAndValues)
	if err != nil {
		b.WriteString("\n")
		b.WriteString(err.Error())
	}
	b.WriteString("\n")
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.writer, b.String())
}

func writeKeysAndValues(b *strings.Builder, keysAndValues []any) {
	for i := 0; i < len(keysAndValues); i += 2 {
		if keysAndValues[i] == KeySeverity {
			continue
		}
		var value any = "<no-value>"
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}
		_, _ = fmt.Fprintf(b, " %v=%v", keysAndValues[i], value)
	}
}

// collapseSource shortens a source so that it fits the display size while keeping its last element visible if possible.
func collapseSource(source string) string {
	runes := []rune(source)
	if len(runes) <= sourceDisplaySize {
		return source
	}
	i := strings.LastIndexAny(source, sourceSeparators)
	simple := []rune(source[i+1:])
	switch {
	case len(simple) == sourceDisplaySize:
		return string(simple)
	case len(simple) > sourceDisplaySize:
		return string(simple[:sourceDisplaySize-1]) + collapseSymbol
	}
	prefix := []rune(source[:i])
	return string(prefix[:sourceDisplaySize-len(simple)-1]) + collapseSymbol + string(simple)
}

// NewLevelledLogger returns a text logger which only displays entries at or above `level`.
// Lines are of the form `[ INFO][<timestamp>][<source>] - message key=value`; errors are displayed on the following line.
// If writer is nil, entries are written to standard output.
func NewLevelledLogger(writer io.Writer, level LogLevel, source string) logr.Logger {
	return newLevelledLogger(writer, level, source, time.Now)
}

func newLevelledLogger(writer io.Writer, level LogLevel, source string, now func() time.Time) logr.Logger {
	if writer == nil {
		writer = os.Stdout
	}
	return logr.New(&levelledSink{
		mu:        &sync.Mutex{},
		writer:    writer,
		threshold: level,
		source:    source,
		now:       now,
	})
}
