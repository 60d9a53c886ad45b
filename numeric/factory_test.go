/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"context"
	"math"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/commonerrors/errortest"
	"github.com/ARM-software/golang-numeric/logs"
	"github.com/ARM-software/golang-numeric/logs/logstest"
)

func TestNew(t *testing.T) {
	tests := []struct {
		raw         any
		kind        Kind
		expected    string
		expectedErr error
	}{
		{raw: 0, kind: Byte, expected: "0"},
		{raw: int8(-128), kind: Byte, expected: "-128"},
		{raw: 560, kind: Byte, expectedErr: commonerrors.ErrOutOfRange},
		{raw: int32(math.MaxInt16 + 1), kind: Short, expectedErr: commonerrors.ErrOutOfRange},
		{raw: 3.0, kind: Int32, expected: "3"},
		{raw: 3.5, kind: Int32, expectedErr: commonerrors.ErrOutOfRange},
		{raw: int64(math.MaxInt32) + 1, kind: Int32, expectedErr: commonerrors.ErrOutOfRange},
		{raw: float32(1.5), kind: Int64, expectedErr: commonerrors.ErrOutOfRange},
		{raw: 1e39, kind: Float32, expectedErr: commonerrors.ErrOutOfRange},
		{raw: 1e39, kind: Float64, expected: "1000000000000000000000000000000000000000"},
		{raw: math.NaN(), kind: Float64, expectedErr: commonerrors.ErrInvalid},
		{raw: math.Inf(-1), kind: Decimal, expectedErr: commonerrors.ErrOutOfRange},
		{raw: float32(0.1), kind: Decimal, expected: "0.1"},
		{raw: decimal.NewFromInt(350), kind: Byte, expectedErr: commonerrors.ErrOutOfRange},
		{raw: decimal.NewFromInt(350), kind: Short, expected: "350"},
		{raw: decimal.RequireFromString("350.5"), kind: Int64, expectedErr: commonerrors.ErrOutOfRange},
		{raw: decimal.New(1, 19), kind: Int64, expectedErr: commonerrors.ErrOutOfRange},
		{raw: decimal.New(1, 400), kind: Float64, expectedErr: commonerrors.ErrOutOfRange},
		{raw: decimal.New(1, 400), kind: Decimal, expected: decimal.New(1, 400).String()},
		{raw: Of(7, Int32).Divide(2), kind: Int32, expectedErr: commonerrors.ErrOutOfRange},
		{raw: Of(7, Int32).Divide(2), kind: Float32, expected: "3.5"},
		{raw: nil, kind: Int32, expectedErr: commonerrors.ErrUndefined},
		{raw: Empty(), kind: Decimal, expectedErr: commonerrors.ErrUndefined},
		{raw: (*decimal.Decimal)(nil), kind: Decimal, expectedErr: commonerrors.ErrUndefined},
		{raw: (*Value)(nil), kind: Decimal, expectedErr: commonerrors.ErrUndefined},
		{raw: "12", kind: Int32, expectedErr: commonerrors.ErrUnsupported},
		{raw: uint8(12), kind: Byte, expectedErr: commonerrors.ErrUnsupported},
		{raw: []any{1}, kind: Int32, expectedErr: commonerrors.ErrUnsupported},
		{raw: 12, kind: Kind(-1), expectedErr: commonerrors.ErrUnsupported},
	}
	for i := range tests {
		test := tests[i]
		t.Run(describe(test.raw)+" as "+test.kind.String(), func(t *testing.T) {
			v, err := New(test.raw, test.kind)
			o := Of(test.raw, test.kind)
			if test.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, test.expected, v.String())
				assert.True(t, o.Equal(v))
				k, ok := v.Kind()
				require.True(t, ok)
				assert.Equal(t, test.kind, k)
			} else {
				errortest.AssertError(t, err, test.expectedErr)
				assert.False(t, v.IsPresent())
				assert.False(t, o.IsPresent())
			}
		})
	}
}

func TestFactoryLogging(t *testing.T) {
	logger, hook := logstest.NewRecordingTestLogger()
	f := NewFactory(WithLogger(logger))

	assert.False(t, f.Of(nil, Int32).IsPresent())
	assert.Equal(t, []logs.LogLevel{logs.LevelWarn}, logstest.Severities(hook))
	hook.Reset()

	assert.False(t, f.Of(struct{}{}, Int32).IsPresent())
	require.Equal(t, []logs.LogLevel{logs.LevelError}, logstest.Severities(hook))
	assert.Equal(t, "Int32", hook.LastEntry().Data[KeyKind])
	assert.Contains(t, hook.LastEntry().Data[KeyRaw], "struct {}")
	hook.Reset()

	v := f.Of(560, Int64)
	assert.Empty(t, hook.AllEntries())
	assert.Nil(t, v.AsByte())
	assert.Equal(t, 1, logstest.Count(hook, logs.LevelError))
	hook.Reset()

	assert.Equal(t, "560", v.Add(nil).String())
	assert.Equal(t, 1, logstest.Count(hook, logs.LevelWarn))
	assert.Equal(t, "add", hook.LastEntry().Data[KeyOperation])
	hook.Reset()

	assert.Equal(t, "560", v.Multiply(faker.Word()).String())
	assert.Equal(t, 1, logstest.Count(hook, logs.LevelError))
	hook.Reset()

	assert.False(t, v.Divide(0).IsPresent())
	require.Equal(t, []logs.LogLevel{logs.LevelError}, logstest.Severities(hook))
	assert.Equal(t, "divide", hook.LastEntry().Data[KeyOperation])
	hook.Reset()

	// Empty values short-circuit without logging.
	assert.False(t, f.Empty().Add(1).IsPresent())
	assert.Nil(t, f.Empty().AsInt32())
	assert.Empty(t, hook.AllEntries())

	assert.False(t, f.FromString(nil).IsPresent())
	assert.Equal(t, 1, logstest.Count(hook, logs.LevelWarn))
}

func TestNilFactory(t *testing.T) {
	var f *Factory
	assert.Equal(t, "3", f.Of(3, Int32).String())
	assert.False(t, f.Empty().IsPresent())
	assert.Equal(t, DefaultDivisionPrecision, f.DivisionPrecision())
	assert.NotNil(t, NewFactory(nil))
}

func TestConcurrentSharing(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := NewFactory(WithLogger(logstest.NewNullTestLogger()))
	shared := f.Of(int32(7), Int32)
	results := make([]Value, 64)
	g, _ := errgroup.WithContext(context.Background())
	for i := range results {
		g.Go(func() error {
			results[i] = shared.Multiply(i).Divide(7).Add(shared).Subtract(7)
			if !results[i].Equal(i) {
				return commonerrors.Newf(commonerrors.ErrUnexpected, "expected %v but got %v", i, results[i])
			}
			if shared.Divide(0).IsPresent() {
				return commonerrors.New(commonerrors.ErrUnexpected, "division by zero succeeded")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, "7", shared.String())
	assert.Equal(t, "63", results[63].String())
}

func FuzzArithmetic(f *testing.F) {
	f.Add("10.5", "35")
	f.Add("-7", "0")
	f.Add("1e-20", "3.3")
	f.Add("abc", "1")
	f.Add("7", "2")
	f.Add("2147483647", "2")
	f.Fuzz(func(t *testing.T, a, b string) {
		x := FromString(&a)
		y := FromString(&b)
		for _, v := range []Value{x, y} {
			// Rescaling numbers with huge exponents exhausts memory.
			if d, ok := v.Get(); ok && (d.Exponent() > 1000 || d.Exponent() < -1000) {
				t.Skip()
			}
		}
		sum := x.Add(y)
		_ = x.Multiply(y)
		quotient := x.Divide(y)
		if !x.IsPresent() {
			assert.False(t, sum.IsPresent())
			return
		}
		if !y.IsPresent() {
			assert.True(t, sum.Equal(x))
			return
		}
		assert.True(t, sum.Subtract(y).Equal(x))
		yd, _ := y.Get()
		assert.Equal(t, !yd.IsZero(), quotient.IsPresent())
		// Results are operands like any other.
		assert.True(t, x.Add(y.Multiply(1)).Equal(sum))
		if quotient.IsPresent() {
			assert.True(t, x.Add(quotient).Equal(x.Add(*quotient.AsDecimal())))
		}
	})
}
