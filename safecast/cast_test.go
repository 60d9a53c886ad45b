package safecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/commonerrors/errortest"
)

type testCase[C1 IConvertable, C2 IConvertable] struct {
	name        string
	value       C1
	expected    C2
	expectedErr error
	castFunc    func(C1) (C2, error)
}

func (tc *testCase[C1, C2]) run(t *testing.T) {
	t.Helper()
	require.NotNil(t, tc.castFunc)
	actual, err := tc.castFunc(tc.value)
	if tc.expectedErr == nil {
		require.NoError(t, err)
		assert.Equal(t, tc.expected, actual)
		return
	}
	errortest.AssertError(t, err, tc.expectedErr)
	assert.Zero(t, actual)
}

func TestCastingFromInt64(t *testing.T) {
	tests := []testCase[int64, int64]{
		{name: "zero to int8", value: 0, expected: 0, castFunc: widen[int64](TryToInt8[int64])},
		{name: "max to int8", value: math.MaxInt8, expected: math.MaxInt8, castFunc: widen[int64](TryToInt8[int64])},
		{name: "min to int8", value: math.MinInt8, expected: math.MinInt8, castFunc: widen[int64](TryToInt8[int64])},
		{name: "above max to int8", value: math.MaxInt8 + 1, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToInt8[int64])},
		{name: "below min to int8", value: math.MinInt8 - 1, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToInt8[int64])},
		{name: "560 to int8", value: 560, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToInt8[int64])},
		{name: "-1 to uint8", value: -1, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToUint8[int64])},
		{name: "max to uint8", value: math.MaxUint8, expected: math.MaxUint8, castFunc: widen[int64](TryToUint8[int64])},
		{name: "above max to uint8", value: math.MaxUint8 + 1, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToUint8[int64])},
		{name: "max to int16", value: math.MaxInt16, expected: math.MaxInt16, castFunc: widen[int64](TryToInt16[int64])},
		{name: "40000 to int16", value: 40000, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToInt16[int64])},
		{name: "min to int16", value: math.MinInt16, expected: math.MinInt16, castFunc: widen[int64](TryToInt16[int64])},
		{name: "max to int32", value: math.MaxInt32, expected: math.MaxInt32, castFunc: widen[int64](TryToInt32[int64])},
		{name: "above max to int32", value: math.MaxInt32 + 1, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToInt32[int64])},
		{name: "below min to int32", value: math.MinInt32 - 1, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[int64](TryToInt32[int64])},
		{name: "max to int64", value: math.MaxInt64, expected: math.MaxInt64, castFunc: TryToInt64[int64]},
		{name: "min to int64", value: math.MinInt64, expected: math.MinInt64, castFunc: TryToInt64[int64]},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, test.run)
	}
}

func TestCastingFromFloat64(t *testing.T) {
	tests := []testCase[float64, float64]{
		{name: "integral to int8", value: 127, expected: 127, castFunc: widen[float64](TryToInt8[float64])},
		{name: "negative integral to int8", value: -128, expected: -128, castFunc: widen[float64](TryToInt8[float64])},
		{name: "fraction to int8", value: 10.5, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToInt8[float64])},
		{name: "too large to int8", value: 980.5, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToInt8[float64])},
		{name: "NaN to int32", value: math.NaN(), expectedErr: commonerrors.ErrInvalid, castFunc: widen[float64](TryToInt32[float64])},
		{name: "Inf to int32", value: math.Inf(1), expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToInt32[float64])},
		{name: "2^63 to int64", value: math.Pow(2, 63), expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToInt64[float64])},
		{name: "float64 of max int64 to int64", value: float64(math.MaxInt64), expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToInt64[float64])},
		{name: "2^31 to int32", value: math.Pow(2, 31), expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToInt32[float64])},
		{name: "largest below 2^63 to int64", value: math.Nextafter(math.Pow(2, 63), 0), expected: math.Nextafter(math.Pow(2, 63), 0), castFunc: widen[float64](TryToInt64[float64])},
		{name: "fraction below max to int8", value: 127.5, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToInt8[float64])},
		{name: "-2^63 to int64", value: -math.Pow(2, 63), expected: -math.Pow(2, 63), castFunc: widen[float64](TryToInt64[float64])},
		{name: "float32 max", value: math.MaxFloat32, expected: math.MaxFloat32, castFunc: widen[float64](TryToFloat32[float64])},
		{name: "above float32 max", value: math.MaxFloat64, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToFloat32[float64])},
		{name: "below float32 min", value: -math.MaxFloat64, expectedErr: commonerrors.ErrOutOfRange, castFunc: widen[float64](TryToFloat32[float64])},
		{name: "NaN to float32", value: math.NaN(), expectedErr: commonerrors.ErrInvalid, castFunc: widen[float64](TryToFloat32[float64])},
		{name: "float64", value: 980.5, expected: 980.5, castFunc: TryToFloat64[float64]},
		{name: "Inf to float64", value: math.Inf(-1), expectedErr: commonerrors.ErrOutOfRange, castFunc: TryToFloat64[float64]},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, test.run)
	}
}

func TestCastingFromFloat32(t *testing.T) {
	i, err := TryToInt16(float32(343))
	require.NoError(t, err)
	assert.Equal(t, int16(343), i)
	_, err = TryToInt16(float32(343.3))
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	f, err := TryToFloat64(float32(35.5))
	require.NoError(t, err)
	assert.Equal(t, 35.5, f)
}

type ratio float64

func TestCastingFromDerivedFloat(t *testing.T) {
	i, err := TryToInt8(ratio(-12))
	require.NoError(t, err)
	assert.Equal(t, int8(-12), i)
	_, err = TryToInt8(ratio(1.5))
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	_, err = TryToInt32(ratio(1e300))
	errortest.AssertErrorReason(t, err, "1e+300 does not fit in a int32")
	_, err = TryToInt64(ratio(math.Inf(1)))
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	_, err = TryToUint8(ratio(math.Inf(-1)))
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	_, err = TryToFloat64(ratio(math.Inf(1)))
	errortest.AssertErrorReason(t, err, "+Inf is not finite")
	_, err = TryToInt16(ratio(math.NaN()))
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	f, err := TryToFloat32(ratio(0.25))
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), f)
}

// widen adapts a conversion so that results can be compared in a single table.
func widen[C3 IConvertable, C1 IConvertable, C2 IConvertable](f func(C1) (C2, error)) func(C1) (C3, error) {
	return func(c C1) (C3, error) {
		v, err := f(c)
		return C3(v), err
	}
}

func TestCastingReasons(t *testing.T) {
	_, err := TryToInt8(560)
	errortest.AssertErrorReason(t, err, "560 does not fit in a int8")
	_, err = TryToInt64(float64(math.MaxInt64))
	errortest.AssertErrorReason(t, err, "9.223372036854776e+18 does not fit in a int64")
	_, err = TryToInt32(3.5)
	errortest.AssertErrorReason(t, err, "3.5 cannot be represented exactly as a int32")
	_, err = TryToFloat32(uint64(math.MaxUint64))
	require.NoError(t, err)
	_, err = TryToUint8(-1)
	errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
}
