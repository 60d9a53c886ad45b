/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"io"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs/logrimp"
)

//go:generate go tool enumer -type=Format -trimprefix=Format -transform=lower -output=format_enumer.go

// Format describes how log entries are rendered.
type Format int

const (
	// FormatText is the levelled text format (see NewLevelledLogger).
	FormatText Format = iota
	// FormatJSON renders entries as JSON documents using zerolog.
	FormatJSON
	FormatZap
	FormatLogrus
	FormatHclog
	FormatSlog
	// FormatStd uses the standard library logger. stdr verbosity is process wide so DEBUG and TRACE entries are only displayed after stdr.SetVerbosity is called.
	FormatStd
)

// logr maps verbosity to negative slog levels.
const slogTraceLevel = slog.LevelDebug - 4

func noClose() error {
	return nil
}

// NewLogger returns a logger writing entries at or above `level` to `writer` using the requested format.
// closeFunc flushes the backend and must be called once the logger is no longer needed. It never closes `writer`.
func NewLogger(format Format, writer io.Writer, level LogLevel, source string) (logger logr.Logger, closeFunc func() error, err error) {
	if writer == nil {
		writer = os.Stderr
	}
	closeFunc = noClose
	switch format {
	case FormatText:
		logger = NewLevelledLogger(writer, level, source)
		return
	case FormatJSON:
		loggers, subErr := NewJSONLoggerWithWriter(NewWriterWithSource(writer), source, source)
		if subErr != nil {
			err = subErr
			return
		}
		logger = NewLogrLoggerFromLoggers(loggers)
		closeFunc = loggers.Close
	case FormatZap:
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(writer),
			zap.NewAtomicLevelAt(zapcore.Level(-LevelTrace.Verbosity())),
		)
		zapL := zap.New(core).Named(source)
		logger = logrimp.NewZapLogger(zapL)
		closeFunc = zapSyncer(zapL)
	case FormatLogrus:
		logrusL := logrus.New()
		logrusL.SetOutput(writer)
		logrusL.SetLevel(logrus.TraceLevel)
		logger = logrimp.NewLogrusLogger(logrusL).WithName(source)
	case FormatHclog:
		logger = logrimp.NewHclogLogger(hclog.New(&hclog.LoggerOptions{
			Name:   source,
			Level:  hclog.Trace,
			Output: writer,
		}))
	case FormatSlog:
		handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: slogTraceLevel})
		logger = logrimp.NewSlogLogger(slog.New(handler)).WithName(source)
	case FormatStd:
		logger = logrimp.NewStdLogr(writer).WithName(source)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "log format %v", format)
		return
	}
	logger = NewLevelFilter(logger, level)
	return
}
