/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/go-logr/logr"
)

//go:generate go tool enumer -type=LogLevel -trimprefix=Level -transform=upper -output=loglevel_enumer.go

// LogLevel describes the severity of a log entry.
type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

const (
	// KeySeverity is the key used to flag the severity of an entry when logr verbosity cannot convey it (i.e. WARN).
	KeySeverity = "severity"
)

// Weight returns the weight of the level. Entries are displayed when their weight is greater or equal to the logger threshold.
func (l LogLevel) Weight() int {
	return int(l)
}

// Allows returns whether an entry at `level` should be displayed by a logger configured with threshold `l`.
func (l LogLevel) Allows(level LogLevel) bool {
	return level.Weight() >= l.Weight()
}

// LevelFromVerbosity maps a logr verbosity onto a LogLevel: V(0) is INFO, V(1) is DEBUG and anything above is TRACE.
func LevelFromVerbosity(v int) LogLevel {
	switch {
	case v <= 0:
		return LevelInfo
	case v == 1:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// Verbosity is the reverse of LevelFromVerbosity. WARN and ERROR are logged at V(0).
func (l LogLevel) Verbosity() int {
	switch l {
	case LevelTrace:
		return 2
	case LevelDebug:
		return 1
	default:
		return 0
	}
}

// levelOfInfo determines the level of an Info entry.
func levelOfInfo(v int, keysAndValues []any) LogLevel {
	if v <= 0 {
		for i := 0; i+1 < len(keysAndValues); i += 2 {
			if keysAndValues[i] == KeySeverity {
				if s, ok := keysAndValues[i+1].(string); ok {
					if level, err := LogLevelString(s); err == nil {
						return level
					}
				}
			}
		}
	}
	return LevelFromVerbosity(v)
}

// Warn logs a warning. logr has no WARN severity so the entry is logged at INFO with a severity flag.
func Warn(logger logr.Logger, msg string, keysAndValues ...any) {
	logger.Info(msg, append([]any{KeySeverity, LevelWarn.String()}, keysAndValues...)...)
}

// Trace logs an entry at TRACE level.
func Trace(logger logr.Logger, msg string, keysAndValues ...any) {
	logger.V(LevelTrace.Verbosity()).Info(msg, keysAndValues...)
}

// Debug logs an entry at DEBUG level.
func Debug(logger logr.Logger, msg string, keysAndValues ...any) {
	logger.V(LevelDebug.Verbosity()).Info(msg, keysAndValues...)
}
