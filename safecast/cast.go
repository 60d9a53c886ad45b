// Package safecast provides conversions between Go numeric types which never wrap around.
// A conversion either returns the exact same value in the target type or an error:
//   - commonerrors.ErrInvalid if the value is not a number (NaN);
//   - commonerrors.ErrOutOfRange if the value is outside the limits of the target type or cannot be represented exactly by an integer type.
package safecast

import (
	"math"

	"github.com/ARM-software/golang-numeric/commonerrors"
)

// TryToInt8 attempts to convert any [IConvertable] value to an int8.
func TryToInt8[C IConvertable](i C) (int8, error) {
	return toInteger[int8](i, math.MinInt8, math.MaxInt8)
}

// TryToUint8 attempts to convert any [IConvertable] value to an uint8.
func TryToUint8[C IConvertable](i C) (uint8, error) {
	return toInteger[uint8](i, 0, math.MaxUint8)
}

// TryToInt16 attempts to convert any [IConvertable] value to an int16.
func TryToInt16[C IConvertable](i C) (int16, error) {
	return toInteger[int16](i, math.MinInt16, math.MaxInt16)
}

// TryToInt32 attempts to convert any [IConvertable] value to an int32.
func TryToInt32[C IConvertable](i C) (int32, error) {
	return toInteger[int32](i, math.MinInt32, math.MaxInt32)
}

// TryToInt64 attempts to convert any [IConvertable] value to an int64.
func TryToInt64[C IConvertable](i C) (int64, error) {
	return toInteger[int64](i, int64(math.MinInt64), int64(math.MaxInt64))
}

// TryToFloat32 attempts to convert any [IConvertable] value to a float32.
// Precision may be lost but the magnitude must fit.
func TryToFloat32[C IConvertable](i C) (f float32, err error) {
	err = checkFloat(i)
	if err != nil {
		return
	}
	if lessThanLowerBoundary(i, -math.MaxFloat32) || greaterThanUpperBoundary(i, math.MaxFloat32) {
		err = commonerrors.Newf(commonerrors.ErrOutOfRange, "%v does not fit in a float32", i)
		return
	}
	f = float32(i)
	return
}

// TryToFloat64 attempts to convert any [IConvertable] value to a float64.
// Precision may be lost for large 64-bit integers.
func TryToFloat64[C IConvertable](i C) (f float64, err error) {
	err = checkFloat(i)
	if err != nil {
		return
	}
	f = float64(i)
	return
}

func checkFloat[C IConvertable](i C) error {
	if isNaN(i) {
		return commonerrors.New(commonerrors.ErrInvalid, "not a number")
	}
	if isInf(i) {
		return commonerrors.Newf(commonerrors.ErrOutOfRange, "%v is not finite", i)
	}
	return nil
}

func toInteger[O IInteger, C IConvertable, B IConvertable](i C, lower, upper B) (o O, err error) {
	err = checkFloat(i)
	if err != nil {
		return
	}
	if lessThanLowerBoundary(i, lower) || greaterThanUpperBoundary(i, upper) {
		err = commonerrors.Newf(commonerrors.ErrOutOfRange, "%v does not fit in a %T", i, o)
		return
	}
	o = O(i)
	// Round trip catches fractional values.
	if C(o) != i || (o < 0) != (i < 0) {
		err = commonerrors.Newf(commonerrors.ErrOutOfRange, "%v cannot be represented exactly as a %T", i, o)
		o = 0
	}
	return
}
