/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/ARM-software/golang-numeric/commonerrors"
)

// quietLogger drops output and forwards everything else.
type quietLogger struct {
	Loggers
}

func (l *quietLogger) Log(_ ...interface{}) {}

// NewQuietLogger returns loggers which only log errors.
func NewQuietLogger(loggers Loggers) (Loggers, error) {
	if loggers == nil {
		return nil, commonerrors.New(commonerrors.ErrNoLogger, "no loggers to quieten")
	}
	return &quietLogger{Loggers: loggers}, nil
}
