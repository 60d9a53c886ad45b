/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package numeric

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/safeparse"
)

// EmptyText is how an empty value is printed.
const EmptyText = "<empty>"

// Value is an immutable number, possibly empty. The zero Value is empty.
// It is stored as a decimal whatever kind it was created with, so that coercions and arithmetic do not compound rounding errors.
type Value struct {
	inner   decimal.NullDecimal
	kind    Kind
	factory *Factory
}

// IsPresent returns whether the value holds a number.
func (v Value) IsPresent() bool {
	return v.inner.Valid
}

// Get returns the canonical decimal and whether there is one.
func (v Value) Get() (decimal.Decimal, bool) {
	return v.inner.Decimal, v.inner.Valid
}

// Kind returns the kind the value was created with.
// The kind of an arithmetic result is the widest kind of its operands, or Decimal if the result does not belong to it.
func (v Value) Kind() (Kind, bool) {
	return v.kind, v.inner.Valid
}

func (v Value) source() *Factory {
	return v.factory.source()
}

func (v Value) text() *string {
	if !v.IsPresent() {
		return nil
	}
	s := v.inner.Decimal.String()
	return &s
}

// The As accessors coerce the canonical decimal into a kind by parsing its text representation.
// Integral kinds drop the fractional part. nil is returned if the value is empty or does not fit the kind.

// AsByte returns the value as a signed 8-bit integer.
func (v Value) AsByte() *int8 {
	if !v.coercible(Byte) {
		return nil
	}
	return v.source().parser.ByteFromString(v.text())
}

// AsShort returns the value as a signed 16-bit integer.
func (v Value) AsShort() *int16 {
	if !v.coercible(Short) {
		return nil
	}
	return v.source().parser.ShortFromString(v.text())
}

// AsInt32 returns the value as a signed 32-bit integer.
func (v Value) AsInt32() *int32 {
	if !v.coercible(Int32) {
		return nil
	}
	return v.source().parser.Int32FromString(v.text())
}

// AsInt64 returns the value as a signed 64-bit integer.
func (v Value) AsInt64() *int64 {
	if !v.coercible(Int64) {
		return nil
	}
	return v.source().parser.Int64FromString(v.text())
}

// AsFloat32 returns the nearest float32.
func (v Value) AsFloat32() *float32 {
	if !v.coercible(Float32) {
		return nil
	}
	return v.source().parser.Float32FromString(v.text())
}

// AsFloat64 returns the nearest float64.
func (v Value) AsFloat64() *float64 {
	if !v.coercible(Float64) {
		return nil
	}
	return v.source().parser.Float64FromString(v.text())
}

// coercible returns false for empty values, and logs values whose magnitude is beyond `kind` before they are printed.
func (v Value) coercible(kind Kind) bool {
	if !v.IsPresent() {
		return false
	}
	d := v.inner.Decimal
	switch {
	case kind.IsIntegral():
		truncated := d.Truncate(0)
		if truncated.GreaterThanOrEqual(minInt64) && truncated.LessThanOrEqual(maxInt64) {
			return true
		}
	case d.Abs().LessThanOrEqual(floatCeiling):
		return true
	}
	v.source().report(commonerrors.Newf(commonerrors.ErrOutOfRange, "value of exponent %v does not fit in a %v", d.Exponent(), kind), "could not coerce value", KeyKind, kind.String())
	return false
}

// AsDecimal returns the canonical decimal.
func (v Value) AsDecimal() *decimal.Decimal {
	if !v.IsPresent() {
		return nil
	}
	return v.source().parser.DecimalFromString(v.text())
}

// As returns the value coerced into `kind`, as text. ok is false if the value is empty or does not fit.
func (v Value) As(kind Kind) (text string, ok bool) {
	switch kind {
	case Byte:
		return textOf(v.AsByte())
	case Short:
		return textOf(v.AsShort())
	case Int32:
		return textOf(v.AsInt32())
	case Int64:
		return textOf(v.AsInt64())
	case Float32:
		return textOf(v.AsFloat32())
	case Float64:
		return textOf(v.AsFloat64())
	case Decimal:
		return textOf(v.AsDecimal())
	default:
		return
	}
}

func textOf[T any](coerced *T) (string, bool) {
	if coerced == nil {
		return "", false
	}
	return fmt.Sprint(*coerced), true
}

// String returns the canonical decimal text, or EmptyText.
func (v Value) String() string {
	if !v.IsPresent() {
		return EmptyText
	}
	return v.inner.Decimal.String()
}

// Equal returns whether `other` holds the same number, whatever their kinds. Two empty values are equal.
func (v Value) Equal(other any) bool {
	o, err := v.source().box(other)
	if err != nil {
		return !v.IsPresent() && commonerrors.Any(err, commonerrors.ErrUndefined)
	}
	return v.IsPresent() && v.inner.Decimal.Equal(o.inner.Decimal)
}

// Add returns v + other. See apply for how failures are handled.
func (v Value) Add(other any) Value {
	return v.apply("add", other, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Add(b), nil
	})
}

// Subtract returns v - other.
func (v Value) Subtract(other any) Value {
	return v.apply("subtract", other, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Sub(b), nil
	})
}

// Multiply returns v * other.
func (v Value) Multiply(other any) Value {
	return v.apply("multiply", other, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		return a.Mul(b), nil
	})
}

// Divide returns v / other rounded half away from zero to the division precision of the factory.
// Division by zero gives an empty value.
func (v Value) Divide(other any) Value {
	precision := v.source().divisionPrecision
	return v.apply("divide", other, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		if b.IsZero() {
			return decimal.Zero, commonerrors.Newf(commonerrors.ErrArithmetic, "division of %v by zero", a)
		}
		return a.DivRound(b, precision), nil
	})
}

// apply combines v with `other` boxed using the kind of its Go type.
//   - if v is empty, v is returned;
//   - if `other` cannot be boxed (e.g. nil, empty or unsupported), the failure is logged and v is returned;
//   - if the operation fails or its result exceeds safeparse.MaxDecimalExponent, the failure is logged and an empty value is returned;
//   - a result which does not belong to the widest kind of the operands is of kind Decimal.
func (v Value) apply(operation string, other any, op func(a, b decimal.Decimal) (decimal.Decimal, error)) (result Value) {
	if !v.IsPresent() {
		result = v
		return
	}
	f := v.source()
	operand, err := f.box(other)
	if err != nil {
		f.report(err, "ignoring operand", KeyOperation, operation, KeyOperand, describe(other))
		result = v
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.report(commonerrors.Newf(commonerrors.ErrArithmetic, "%v", r), "arithmetic failure", KeyOperation, operation, KeyRaw, v.String(), KeyOperand, operand.String())
			result = f.Empty()
		}
	}()
	d, err := op(v.inner.Decimal, operand.inner.Decimal)
	if err == nil {
		err = safeparse.CheckDecimalExponent(d)
	}
	if err != nil {
		f.report(err, "arithmetic failure", KeyOperation, operation, KeyRaw, v.String(), KeyOperand, operand.String())
		result = f.Empty()
		return
	}
	kind := widest(v.kind, operand.kind)
	if checkDecimal(kind, d) != nil {
		kind = Decimal
	}
	result = f.wrap(d, kind)
	return
}

// MarshalText returns the canonical decimal text. An empty value is marshalled as empty text.
func (v Value) MarshalText() ([]byte, error) {
	if !v.IsPresent() {
		return []byte{}, nil
	}
	return []byte(v.inner.Decimal.String()), nil
}

// UnmarshalText parses decimal text into a Decimal value. Empty text gives an empty value.
func (v *Value) UnmarshalText(text []byte) error {
	if v == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "no value to unmarshal into")
	}
	f := v.source()
	if len(text) == 0 {
		*v = f.Empty()
		return nil
	}
	s := string(text)
	d, err := safeparse.ParseDecimal(&s)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrMarshalling, err, "")
	}
	*v = f.wrap(d, Decimal)
	return nil
}
