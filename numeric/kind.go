/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"github.com/shopspring/decimal"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/safecast"
	"github.com/ARM-software/golang-numeric/safeparse"
)

//go:generate go tool enumer -type=Kind -output=kind_enumer.go

// Kind is a numeric representation understood by this package.
// Kinds are ordered by width: an arithmetic result takes the widest kind of its operands, or Decimal if it does not belong to that kind.
type Kind int

const (
	// Byte is a signed 8-bit integer (int8).
	Byte Kind = iota
	// Short is a signed 16-bit integer (int16).
	Short
	Int32
	// Int64 is a signed 64-bit integer. `int` values are boxed as Int64.
	Int64
	Float32
	Float64
	// Decimal is an arbitrary-precision decimal (decimal.Decimal).
	Decimal
)

var (
	minInt64 = decimal.NewFromInt(-1 << 63)
	maxInt64 = decimal.NewFromInt(1<<63 - 1)
	// floats above this magnitude are infinite.
	floatCeiling = decimal.New(1, 309)
)

// BitSize returns the width of the kind's representation, 0 for Decimal which is unbounded.
func (k Kind) BitSize() int {
	switch k {
	case Byte:
		return 8
	case Short:
		return 16
	case Int32, Float32:
		return 32
	case Int64, Float64:
		return 64
	default:
		return 0
	}
}

// IsIntegral returns whether the kind only holds integers.
func (k Kind) IsIntegral() bool {
	switch k {
	case Byte, Short, Int32, Int64:
		return true
	default:
		return false
	}
}

func widest(a, b Kind) Kind {
	return max(a, b)
}

// checkNumber verifies that a Go number belongs to the domain of kind `k`.
func checkNumber[C safecast.IConvertable](k Kind, v C) (err error) {
	switch k {
	case Byte:
		_, err = safecast.TryToInt8(v)
	case Short:
		_, err = safecast.TryToInt16(v)
	case Int32:
		_, err = safecast.TryToInt32(v)
	case Int64:
		_, err = safecast.TryToInt64(v)
	case Float32:
		_, err = safecast.TryToFloat32(v)
	case Float64, Decimal:
		_, err = safecast.TryToFloat64(v)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "%v is not a supported kind", k)
	}
	return
}

// checkDecimal verifies that a decimal belongs to the domain of kind `k`.
// Decimals whose exponent exceeds safeparse.MaxDecimalExponent belong to no kind.
func checkDecimal(k Kind, d decimal.Decimal) error {
	if err := safeparse.CheckDecimalExponent(d); err != nil {
		return err
	}
	switch {
	case k == Decimal:
		return nil
	case k.IsIntegral():
		if !d.IsInteger() {
			return commonerrors.Newf(commonerrors.ErrOutOfRange, "%v cannot be represented exactly as a %v", d, k)
		}
		if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
			return commonerrors.Newf(commonerrors.ErrOutOfRange, "%v does not fit in a %v", d, k)
		}
		return checkNumber(k, d.IntPart())
	case k == Float32 || k == Float64:
		f, _ := d.Float64()
		return checkNumber(k, f)
	default:
		return commonerrors.Newf(commonerrors.ErrUnsupported, "%v is not a supported kind", k)
	}
}
