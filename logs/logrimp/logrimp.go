/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp turns the logging backends used in this module into logr loggers.
// Verbosity follows logr: V(1) entries are DEBUG and V(2) entries are TRACE.
package logrimp

import (
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// NewZapLogger uses zap. V(n) entries are logged at zap level -n.
func NewZapLogger(logger *zap.Logger) logr.Logger {
	return zapr.NewLogger(logger)
}

// NewLogrusLogger uses logrus through logrusr.
func NewLogrusLogger(logger logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	return logrusr.New(logger, opts...)
}

// NewHclogLogger uses an HCLog logger.
func NewHclogLogger(logger hclog.Logger) logr.Logger {
	return hclogr.Wrap(logger)
}

func NewSlogLogger(logger *slog.Logger) logr.Logger {
	return logr.FromSlogHandler(logger.Handler())
}

// NewStdLogr uses the standard library logger writing to `writer`. stdr verbosity is global, see stdr.SetVerbosity.
func NewStdLogr(writer io.Writer) logr.Logger {
	return stdr.New(log.New(writer, "", log.LstdFlags))
}

// NewStdOutLogr prints every entry, whatever its verbosity, to standard output.
func NewStdOutLogr() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix == "" {
			fmt.Println(args)
			return
		}
		fmt.Printf("%s: %s\n", prefix, args)
	}, funcr.Options{Verbosity: 2})
}
