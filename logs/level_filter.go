/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/go-logr/logr"
)

type levelFilterSink struct {
	sink      logr.LogSink
	threshold LogLevel
}

func (s *levelFilterSink) Init(info logr.RuntimeInfo) {
	info.CallDepth++
	s.sink.Init(info)
}

func (s *levelFilterSink) Enabled(v int) bool {
	if v <= 0 {
		return s.threshold.Allows(LevelWarn) && s.sink.Enabled(v)
	}
	return s.threshold.Allows(LevelFromVerbosity(v)) && s.sink.Enabled(v)
}

func (s *levelFilterSink) Info(v int, msg string, keysAndValues ...any) {
	if !s.threshold.Allows(levelOfInfo(v, keysAndValues)) {
		return
	}
	s.sink.Info(v, msg, keysAndValues...)
}

func (s *levelFilterSink) Error(err error, msg string, keysAndValues ...any) {
	s.sink.Error(err, msg, keysAndValues...)
}

func (s *levelFilterSink) WithValues(keysAndValues ...any) logr.LogSink {
	return &levelFilterSink{sink: s.sink.WithValues(keysAndValues...), threshold: s.threshold}
}

func (s *levelFilterSink) WithName(name string) logr.LogSink {
	return &levelFilterSink{sink: s.sink.WithName(name), threshold: s.threshold}
}

// NewLevelFilter restricts any logr logger to entries at or above `threshold`.
func NewLevelFilter(logger logr.Logger, threshold LogLevel) logr.Logger {
	sink := logger.GetSink()
	if sink == nil {
		return logger
	}
	return logr.New(&levelFilterSink{sink: sink, threshold: threshold})
}
