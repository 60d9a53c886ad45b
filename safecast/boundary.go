package safecast

import (
	"math"
	"reflect"
)

// greaterThanUpperBoundary states whether value is strictly above a positive upperBoundary.
func greaterThanUpperBoundary[C1 IConvertable, C2 IConvertable](value C1, upperBoundary C2) bool {
	if value <= 0 {
		return false
	}
	if isFloat(upperBoundary) {
		return float64(value) > float64(upperBoundary)
	}
	if isFloat(value) {
		// Integral upper boundaries are maxima of integer types i.e. 2^n-1, which float64 may round up to 2^n.
		return float64(value) >= float64(upperBoundary)+1
	}
	// positive integers all fit in an uint64.
	return uint64(value) > uint64(upperBoundary)
}

// lessThanLowerBoundary states whether value is strictly below a negative or zero lowerBoundary.
func lessThanLowerBoundary[C1 IConvertable, C2 IConvertable](value C1, lowerBoundary C2) bool {
	if value >= 0 {
		return false
	}
	if isFloat(value) || isFloat(lowerBoundary) {
		return float64(value) < float64(lowerBoundary)
	}
	// value is a negative signed integer so both fit in an int64.
	return int64(value) < int64(lowerBoundary)
}

// isFloat also holds for types derived from float32 or float64.
func isFloat[C IConvertable](value C) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNaN[C IConvertable](value C) bool {
	// only floats can differ from themselves.
	return value != value //nolint:gocritic
}

func isInf[C IConvertable](value C) bool {
	return isFloat(value) && math.IsInf(float64(value), 0)
}
