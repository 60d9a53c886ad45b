/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/commonerrors/errortest"
	"github.com/ARM-software/golang-numeric/mocks"
)

func TestJSONLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Run("with writer closing", func(t *testing.T) {
		loggers, err := NewJSONLogger(&StdWriter{}, "Test", "TestJSONLogger")
		require.NoError(t, err)
		testLog(t, loggers)
	})
	t.Run("without writer closing", func(t *testing.T) {
		writer := NewWriterWithSource(&bytes.Buffer{})
		defer func() { _ = writer.Close() }()
		loggers, err := NewJSONLoggerWithWriter(writer, "Test", "TestJSONLogger")
		require.NoError(t, err)
		testLog(t, loggers)
		require.NoError(t, writer.Close())
	})
}

func TestJSONLoggerContent(t *testing.T) {
	buf := &bytes.Buffer{}
	loggers, err := NewJSONLoggerWithWriter(NewWriterWithSource(buf), "numcalc", "expression")
	require.NoError(t, err)
	loggers.Log("1 + 2 = 3")
	assert.Contains(t, buf.String(), `"message":"1 + 2 = 3"`)
	assert.Contains(t, buf.String(), `"severity":"info"`)
	assert.Contains(t, buf.String(), `"source":"expression"`)
	assert.Contains(t, buf.String(), `"logger-source":"numcalc"`)
	assert.Contains(t, buf.String(), `"ctime":`)
	buf.Reset()
	loggers.LogError("division by zero")
	assert.Contains(t, buf.String(), `"severity":"error"`)
	buf.Reset()
	loggers.Log("\n")
	assert.Empty(t, buf.String())
}

func TestJSONLoggerCheck(t *testing.T) {
	_, err := NewJSONLogger(nil, "Test", "source")
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	_, err = NewJSONLogger(&StdWriter{}, "Test", "")
	errortest.AssertError(t, err, commonerrors.ErrNoLogSource)
	_, err = NewJSONLogger(&StdWriter{}, "", "source")
	errortest.AssertError(t, err, commonerrors.ErrNoLoggerSource)
}

func TestJSONLoggerClosesWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockWriterWithSource(ctrl)
	writer.EXPECT().SetSource("source").Return(nil)
	writer.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
	writer.EXPECT().Close().Return(nil).Times(1)
	loggers, err := NewJSONLogger(writer, "Test", "source")
	require.NoError(t, err)
	loggers.Log("entry")
	require.NoError(t, loggers.Close())
}
