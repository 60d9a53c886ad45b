/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log/slog"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/logs/logrimp"
)

// zap fails to sync terminals on Linux with "sync /dev/stderr: invalid argument" see https://github.com/uber-go/zap/issues/328
const syncError = "invalid argument"

func fromBackend(missing bool, backend string, loggerSource string, toLogr func() logr.Logger, closeFunc func() error) (Loggers, error) {
	if missing {
		return nil, commonerrors.Newf(commonerrors.ErrNoLogger, "no %v logger", backend)
	}
	return NewLogrLoggerWithClose(toLogr(), loggerSource, closeFunc)
}

// NewZapLogger returns loggers based on zap (https://github.com/uber-go/zap). Closing them syncs zap.
func NewZapLogger(zapL *zap.Logger, loggerSource string) (Loggers, error) {
	return fromBackend(zapL == nil, "zap", loggerSource, func() logr.Logger {
		return logrimp.NewZapLogger(zapL)
	}, zapSyncer(zapL))
}

// NewLogrusLogger returns loggers based on logrus (https://github.com/sirupsen/logrus)
func NewLogrusLogger(logrusL *logrus.Logger, loggerSource string) (Loggers, error) {
	return fromBackend(logrusL == nil, "logrus", loggerSource, func() logr.Logger {
		return logrimp.NewLogrusLogger(logrusL)
	}, nil)
}

// NewHclogLogger returns loggers based on hclog (https://github.com/hashicorp/go-hclog)
func NewHclogLogger(hclogL hclog.Logger, loggerSource string) (Loggers, error) {
	return fromBackend(hclogL == nil, "hclog", loggerSource, func() logr.Logger {
		return logrimp.NewHclogLogger(hclogL)
	}, nil)
}

// NewSlogLogger returns loggers based on log/slog.
func NewSlogLogger(slogL *slog.Logger, loggerSource string) (Loggers, error) {
	return fromBackend(slogL == nil, "slog", loggerSource, func() logr.Logger {
		return logrimp.NewSlogLogger(slogL)
	}, nil)
}

// NewNoopLogger returns loggers discarding everything.
func NewNoopLogger(loggerSource string) (Loggers, error) {
	return NewLogrLogger(logr.Discard(), loggerSource)
}

func zapSyncer(zapL *zap.Logger) func() error {
	return func() error {
		if zapL == nil {
			return nil
		}
		return ignoreSyncError(zapL.Sync())
	}
}

func ignoreSyncError(err error) error {
	if commonerrors.CorrespondTo(err, syncError) {
		return nil
	}
	return err
}
